package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type WageType string

const (
	WageTypeHourly  WageType = "hourly"
	WageTypeDaily   WageType = "daily"
	WageTypeMonthly WageType = "monthly"
)

type PayFrequency string

const (
	PayFrequencyWeekly      PayFrequency = "weekly"
	PayFrequencySemiMonthly PayFrequency = "semi_monthly"
	PayFrequencyMonthly     PayFrequency = "monthly"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusDraft      Status = "draft"
	StatusTerminated Status = "terminated"
)

// Contract is the wage basis for one employee. At most one active
// contract per employee exists at a time; that invariant is enforced
// where contracts are written, not here.
type Contract struct {
	ID             string
	EmployeeID     string
	Status         Status
	WageType       WageType
	Wage           decimal.Decimal
	PayFrequency   PayFrequency
	StartDate      time.Time
	EndDate        *time.Time
	FilingStatusID *string

	// Leave deduction policy. When CalculateDailyLeaveAmount is false a
	// flat per-leave amount is charged instead of the daily wage.
	CalculateDailyLeaveAmount  bool
	DeductionForOneLeaveAmount decimal.Decimal
	DeductLeaveFromBasicPay    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
