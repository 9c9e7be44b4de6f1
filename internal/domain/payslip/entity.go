package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one itemized component amount on a payslip.
type LineItem struct {
	ComponentID string          `json:"component_id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
}

// MonthSegment is the per-calendar-month breakdown of a payslip
// period, used by every proration and percentage-limit calculation.
type MonthSegment struct {
	Year                  int             `json:"year"`
	Month                 time.Month      `json:"month"`
	DaysInMonth           int             `json:"days_in_month"`
	WorkingDaysInMonth    int             `json:"working_days_in_month"`
	WorkingDaysInSegment  int             `json:"working_days_in_segment"`
	WorkingDaysInPeriod   int             `json:"working_days_in_period"`
	PerDayWage            decimal.Decimal `json:"per_day_wage"`
}

// Result is the finalized, itemized payslip for one employee and
// period. It is created fresh per computation and never mutated after
// the pipeline returns it.
type Result struct {
	ID          string
	EmployeeID  string
	ContractID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	ContractWage    decimal.Decimal
	BasicPay        decimal.Decimal
	GrossPay        decimal.Decimal
	TaxableGrossPay decimal.Decimal

	Allowances []LineItem

	// Update-compensation deductions, bucketed by the pay head they
	// reduced directly.
	BasicPayAdjustments []LineItem
	GrossPayAdjustments []LineItem
	NetPayAdjustments   []LineItem

	PretaxDeductions  []LineItem
	PosttaxDeductions []LineItem
	TaxDeductions     []LineItem

	// NetPayDeductions are net-pay-based deductions evaluated in the
	// pipeline's second pass against the pre-adjustment net pay.
	NetPayDeductions []LineItem

	LossOfPay       decimal.Decimal
	BracketTax      decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	MonthBreakdown []MonthSegment
	ConflictDates  []time.Time
	Warnings       []string

	Status    Status
	CreatedAt time.Time
}

type Status string

const (
	StatusDraft Status = "draft"
	StatusPaid  Status = "paid"
)

// Period is a validated payslip date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days is the inclusive day count of the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}
