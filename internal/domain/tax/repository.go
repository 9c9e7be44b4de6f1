package tax

import "context"

type TaxRepository interface {
	GetFilingStatusByID(ctx context.Context, id string) (FilingStatus, error)
	ListFilingStatuses(ctx context.Context) ([]FilingStatus, error)
	// ListBracketsByFilingStatus returns brackets ordered by MinIncome
	// ascending.
	ListBracketsByFilingStatus(ctx context.Context, filingStatusID string) ([]Bracket, error)
	ReplaceBrackets(ctx context.Context, filingStatusID string, brackets []Bracket) ([]Bracket, error)
}
