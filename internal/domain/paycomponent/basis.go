package paycomponent

import "github.com/shopspring/decimal"

// Basis is the formula family of a non-fixed component. Each variant
// carries exactly the fields its formula needs, so an invalid
// combination of rate/per-unit fields cannot be represented.
type Basis interface {
	// Name is the stored identifier of the variant.
	Name() string
}

// PercentOfBasicPay pays Rate percent of basic pay.
type PercentOfBasicPay struct {
	Rate decimal.Decimal
}

// PercentOfGrossPay pays Rate percent of gross pay.
type PercentOfGrossPay struct {
	Rate decimal.Decimal
}

// PercentOfTaxableGrossPay pays Rate percent of taxable gross pay.
type PercentOfTaxableGrossPay struct {
	Rate decimal.Decimal
}

// PercentOfNetPay pays Rate percent of net pay. Deductions on this
// basis are deferred to the pipeline's second pass.
type PercentOfNetPay struct {
	Rate decimal.Decimal
}

// PerAttendance pays Amount per validated attendance record.
type PerAttendance struct {
	Amount decimal.Decimal
}

// PerShift pays Amount per validated attendance record on the shift.
type PerShift struct {
	ShiftID string
	Amount  decimal.Decimal
}

// PerWorkType pays Amount per validated attendance record with the
// work type.
type PerWorkType struct {
	WorkTypeID string
	Amount     decimal.Decimal
}

// OvertimeHourly pays Rate per overtime hour worked in the period.
type OvertimeHourly struct {
	Rate decimal.Decimal
}

// PerChild pays Amount per registered child of the employee.
type PerChild struct {
	Amount decimal.Decimal
}

func (PercentOfBasicPay) Name() string        { return "basic_pay" }
func (PercentOfGrossPay) Name() string        { return "gross_pay" }
func (PercentOfTaxableGrossPay) Name() string { return "taxable_gross_pay" }
func (PercentOfNetPay) Name() string          { return "net_pay" }
func (PerAttendance) Name() string            { return "attendance" }
func (PerShift) Name() string                 { return "shift" }
func (PerWorkType) Name() string              { return "work_type" }
func (OvertimeHourly) Name() string           { return "overtime" }
func (PerChild) Name() string                 { return "children" }
