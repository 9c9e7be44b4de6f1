package payslip

import (
	"time"

	"github.com/hriscore/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipsRequest struct {
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active
	PeriodStart string   `json:"period_start"`           // YYYY-MM-DD
	PeriodEnd   string   `json:"period_end"`             // YYYY-MM-DD
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidDate(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period parses the request dates. The semantic checks (end before
// start, end in the future) live in NewPeriod so the engine applies
// them regardless of the entry point.
func (r *GeneratePayslipsRequest) Period() (Period, error) {
	start, err := time.Parse("2006-01-02", r.PeriodStart)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	end, err := time.Parse("2006-01-02", r.PeriodEnd)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	return NewPeriod(start, end, time.Now())
}

// NewPeriod validates a payslip period against now.
func NewPeriod(start, end, now time.Time) (Period, error) {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) || end.After(today) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

type PayslipResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	ContractWage    decimal.Decimal `json:"contract_wage"`
	BasicPay        decimal.Decimal `json:"basic_pay"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TaxableGrossPay decimal.Decimal `json:"taxable_gross_pay"`

	Allowances          []LineItem `json:"allowances"`
	BasicPayAdjustments []LineItem `json:"basic_pay_adjustments"`
	GrossPayAdjustments []LineItem `json:"gross_pay_adjustments"`
	NetPayAdjustments   []LineItem `json:"net_pay_adjustments"`
	PretaxDeductions    []LineItem `json:"pretax_deductions"`
	PosttaxDeductions   []LineItem `json:"posttax_deductions"`
	TaxDeductions       []LineItem `json:"tax_deductions"`
	NetPayDeductions    []LineItem `json:"net_pay_deductions"`

	LossOfPay       decimal.Decimal `json:"loss_of_pay"`
	BracketTax      decimal.Decimal `json:"bracket_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`

	Warnings []string `json:"warnings,omitempty"`
	Status   string   `json:"status"`
}

func ToResponse(r Result) PayslipResponse {
	return PayslipResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		PeriodStart:         r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:           r.PeriodEnd.Format("2006-01-02"),
		ContractWage:        r.ContractWage,
		BasicPay:            r.BasicPay,
		GrossPay:            r.GrossPay,
		TaxableGrossPay:     r.TaxableGrossPay,
		Allowances:          r.Allowances,
		BasicPayAdjustments: r.BasicPayAdjustments,
		GrossPayAdjustments: r.GrossPayAdjustments,
		NetPayAdjustments:   r.NetPayAdjustments,
		PretaxDeductions:    r.PretaxDeductions,
		PosttaxDeductions:   r.PosttaxDeductions,
		TaxDeductions:       r.TaxDeductions,
		NetPayDeductions:    r.NetPayDeductions,
		LossOfPay:           r.LossOfPay,
		BracketTax:          r.BracketTax,
		TotalDeductions:     r.TotalDeductions,
		NetPay:              r.NetPay,
		Warnings:            r.Warnings,
		Status:              string(r.Status),
	}
}

// EmployeeError reports a per-employee failure inside a batch run.
type EmployeeError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type BatchResponse struct {
	Payslips []PayslipResponse `json:"payslips"`
	Failures []EmployeeError   `json:"failures,omitempty"`
}

type Filter struct {
	EmployeeID  *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Page        int
	Limit       int
}
