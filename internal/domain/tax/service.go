package tax

import "context"

type TaxService interface {
	ListFilingStatuses(ctx context.Context) ([]FilingStatusResponse, error)
	GetFilingStatus(ctx context.Context, id string) (FilingStatusResponse, error)
	// ReplaceBrackets validates contiguity before swapping the table so
	// a misconfigured request never reaches storage.
	ReplaceBrackets(ctx context.Context, req ReplaceBracketsRequest) ([]BracketResponse, error)
}
