package tax

import (
	"github.com/hriscore/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BracketDTO struct {
	MinIncome decimal.Decimal  `json:"min_income"`
	MaxIncome *decimal.Decimal `json:"max_income,omitempty"` // nil = unbounded
	Rate      decimal.Decimal  `json:"rate"`
}

// ReplaceBracketsRequest swaps the full bracket table of one filing
// status in a single transaction.
type ReplaceBracketsRequest struct {
	FilingStatusID string       `json:"filing_status_id"`
	Brackets       []BracketDTO `json:"brackets"`
}

func (r *ReplaceBracketsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FilingStatusID) {
		errs = append(errs, validator.ValidationError{Field: "filing_status_id", Message: "is required"})
	}
	if len(r.Brackets) == 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets", Message: "at least one bracket is required"})
	}
	for _, b := range r.Brackets {
		if b.MinIncome.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "brackets", Message: "min_income must be non-negative"})
			break
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{Field: "brackets", Message: "rate must be between 0 and 1"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ReplaceBracketsRequest) ToBrackets() []Bracket {
	brackets := make([]Bracket, 0, len(r.Brackets))
	for _, b := range r.Brackets {
		brackets = append(brackets, Bracket{
			FilingStatusID: r.FilingStatusID,
			MinIncome:      b.MinIncome,
			MaxIncome:      b.MaxIncome,
			Rate:           b.Rate,
		})
	}
	return brackets
}

type BracketResponse struct {
	ID        string           `json:"id"`
	MinIncome decimal.Decimal  `json:"min_income"`
	MaxIncome *decimal.Decimal `json:"max_income,omitempty"`
	Rate      decimal.Decimal  `json:"rate"`
}

type FilingStatusResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	IsActive bool              `json:"is_active"`
	Brackets []BracketResponse `json:"brackets,omitempty"`
}

func ToBracketResponse(b Bracket) BracketResponse {
	return BracketResponse{
		ID:        b.ID,
		MinIncome: b.MinIncome,
		MaxIncome: b.MaxIncome,
		Rate:      b.Rate,
	}
}
