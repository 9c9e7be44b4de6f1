package paycomponent

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind separates allowances from deductions. Both share the Definition
// shape; the deduction-only fields are zero-valued on allowances.
type Kind string

const (
	KindAllowance Kind = "allowance"
	KindDeduction Kind = "deduction"
)

// Operator is a comparison used by eligibility and if-conditions.
type Operator string

const (
	OpEqual        Operator = "eq"
	OpNotEqual     Operator = "ne"
	OpLessThan     Operator = "lt"
	OpGreaterThan  Operator = "gt"
	OpLessEqual    Operator = "le"
	OpGreaterEqual Operator = "ge"
	OpContains     Operator = "contains"
	// OpRange is valid only on if-conditions.
	OpRange Operator = "range"
)

// ConditionField is the closed set of employee attributes an
// eligibility condition may reference. Each field has a fixed value
// type, so comparisons never fall back to reflection.
type ConditionField string

const (
	FieldGender        ConditionField = "gender"
	FieldMaritalStatus ConditionField = "marital_status"
	FieldChildren      ConditionField = "children"
	FieldExperience    ConditionField = "experience"
	FieldCountry       ConditionField = "country"
	FieldState         ConditionField = "state"
	FieldDepartment    ConditionField = "department"
	FieldJobPosition   ConditionField = "job_position"
	FieldPayFrequency  ConditionField = "pay_frequency"
	FieldWageType      ConditionField = "wage_type"
)

// Condition is one eligibility predicate. All conditions on a
// definition must hold (logical AND).
type Condition struct {
	Field    ConditionField
	Operator Operator
	Value    string
}

// CompensationHead names the pay head an update-compensation deduction
// reduces directly instead of joining a deduction bucket.
type CompensationHead string

const (
	CompensationNone     CompensationHead = ""
	CompensationBasicPay CompensationHead = "basic_pay"
	CompensationGrossPay CompensationHead = "gross_pay"
	CompensationNetPay   CompensationHead = "net_pay"
)

// IfBasis is the reference value of a secondary if-condition.
type IfBasis string

const (
	IfBasisBasicPay IfBasis = "basic_pay"
	IfBasisGrossPay IfBasis = "gross_pay"
)

// IfCondition can zero or exclude an otherwise-eligible component
// based on the employee's basic or gross pay for the period.
type IfCondition struct {
	Basis      IfBasis
	Operator   Operator
	Value      decimal.Decimal
	RangeStart decimal.Decimal
	RangeEnd   decimal.Decimal
}

// Definition is one configured allowance or deduction rule.
type Definition struct {
	ID    string
	Title string
	Kind  Kind

	// Targeting. Either a specific employee list, or all active
	// employees; the exclude list applies to the include-all form.
	IncludeAllActive    bool
	SpecificEmployeeIDs []string
	ExcludedEmployeeIDs []string
	Conditions          []Condition

	// Amount. Fixed components carry Amount; formula components carry
	// a Basis variant.
	IsFixed bool
	Amount  decimal.Decimal
	Basis   Basis

	HasMaxLimit   bool
	MaximumAmount decimal.Decimal

	// OneTimeDate restricts the component to the payslip period that
	// contains this date.
	OneTimeDate *time.Time

	// Allowances only.
	IsTaxable bool

	// Deductions only.
	IsPretax           bool
	IsTax              bool
	UpdateCompensation CompensationHead
	IfCondition        *IfCondition

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesInPeriod reports whether a one-time component's date falls
// inside [start, end]. Components without a one-time date always pass.
func (d Definition) AppliesInPeriod(start, end time.Time) bool {
	if d.OneTimeDate == nil {
		return true
	}
	dt := *d.OneTimeDate
	return !dt.Before(start) && !dt.After(end)
}
