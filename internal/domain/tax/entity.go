package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilingStatus selects a bracket table for a contract.
type FilingStatus struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Bracket is one progressive tax band. MaxIncome nil means unbounded.
// Brackets for one filing status must be contiguous and non-overlapping
// when ordered by MinIncome.
type Bracket struct {
	ID             string
	FilingStatusID string
	MinIncome      decimal.Decimal
	MaxIncome      *decimal.Decimal
	Rate           decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
