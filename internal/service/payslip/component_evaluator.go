package payslip

import (
	"log/slog"
	"strings"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// EvalContext carries the per-employee, per-period values a component
// formula can reference. GrossPay is a function because gross pay
// depends on allowances evaluated earlier in the same run and must be
// recomputed at the moment an if-condition reads it.
type EvalContext struct {
	Employee    employee.Employee
	Contract    contract.Contract
	PeriodStart time.Time
	PeriodEnd   time.Time

	BasicPay        decimal.Decimal
	GrossPay        func() decimal.Decimal
	TaxableGrossPay decimal.Decimal
	NetPay          decimal.Decimal

	Attendance Summary
	Logger     *slog.Logger
}

// Evaluation is the outcome for one component. Applies false means the
// component is left off the payslip entirely; a zeroed amount with
// Applies true stays itemized at 0.
type Evaluation struct {
	Amount  decimal.Decimal
	Applies bool
}

func skip() Evaluation { return Evaluation{Applies: false} }

// EvaluateComponent resolves eligibility and amount for one allowance
// or deduction definition against one employee and period.
func EvaluateComponent(def paycomponent.Definition, ec EvalContext) Evaluation {
	if !eligible(def, ec) {
		return skip()
	}
	if !def.AppliesInPeriod(dateOnly(ec.PeriodStart), dateOnly(ec.PeriodEnd)) {
		return skip()
	}

	amount := componentAmount(def, ec)

	if def.HasMaxLimit && amount.GreaterThan(def.MaximumAmount) {
		amount = def.MaximumAmount
	}

	if def.IfCondition != nil {
		switch gateResult(*def.IfCondition, ec) {
		case gateExclude:
			return skip()
		case gateZero:
			amount = decimal.Zero
		}
	}

	return Evaluation{Amount: amount, Applies: true}
}

// eligible applies the targeting rules: a specific employee list, or
// include-all-active minus the exclude list, or attribute conditions.
// All listed conditions must hold.
func eligible(def paycomponent.Definition, ec EvalContext) bool {
	for _, id := range def.ExcludedEmployeeIDs {
		if id == ec.Employee.ID {
			return false
		}
	}

	targeted := false
	if len(def.SpecificEmployeeIDs) > 0 {
		for _, id := range def.SpecificEmployeeIDs {
			if id == ec.Employee.ID {
				targeted = true
				break
			}
		}
		if !targeted {
			return false
		}
	} else if def.IncludeAllActive {
		targeted = ec.Employee.IsActive
	} else {
		// Condition-only targeting.
		targeted = len(def.Conditions) > 0
	}
	if !targeted {
		return false
	}

	for _, cond := range def.Conditions {
		if !conditionHolds(cond, ec) {
			if ec.Logger != nil {
				ec.Logger.Debug("pay component condition not met",
					slog.String("component", def.Title),
					slog.String("field", string(cond.Field)),
					slog.String("employee_id", ec.Employee.ID),
				)
			}
			return false
		}
	}
	return true
}

func componentAmount(def paycomponent.Definition, ec EvalContext) decimal.Decimal {
	if def.IsFixed {
		return def.Amount
	}

	switch basis := def.Basis.(type) {
	case paycomponent.PercentOfBasicPay:
		return ec.BasicPay.Mul(basis.Rate).Div(oneHundred)
	case paycomponent.PercentOfGrossPay:
		return ec.GrossPay().Mul(basis.Rate).Div(oneHundred)
	case paycomponent.PercentOfTaxableGrossPay:
		return ec.TaxableGrossPay.Mul(basis.Rate).Div(oneHundred)
	case paycomponent.PercentOfNetPay:
		return ec.NetPay.Mul(basis.Rate).Div(oneHundred)
	case paycomponent.PerAttendance:
		return basis.Amount.Mul(decimal.NewFromInt(int64(len(ec.Attendance.Records))))
	case paycomponent.PerShift:
		count := 0
		for _, rec := range ec.Attendance.Records {
			if rec.ShiftID != nil && *rec.ShiftID == basis.ShiftID {
				count++
			}
		}
		return basis.Amount.Mul(decimal.NewFromInt(int64(count)))
	case paycomponent.PerWorkType:
		count := 0
		for _, rec := range ec.Attendance.Records {
			if rec.WorkTypeID != nil && *rec.WorkTypeID == basis.WorkTypeID {
				count++
			}
		}
		return basis.Amount.Mul(decimal.NewFromInt(int64(count)))
	case paycomponent.OvertimeHourly:
		hours := decimal.NewFromInt(ec.Attendance.TotalOvertimeSeconds).Div(secondsPerHour)
		return hours.Mul(basis.Rate)
	case paycomponent.PerChild:
		if ec.Employee.Children == nil {
			return decimal.Zero
		}
		return basis.Amount.Mul(decimal.NewFromInt(int64(*ec.Employee.Children)))
	default:
		return decimal.Zero
	}
}

type gateOutcome int

const (
	gatePass gateOutcome = iota
	gateZero
	gateExclude
)

// gateResult evaluates the secondary if-condition. A failed range
// check zeroes the amount but keeps the component itemized; a failed
// threshold check excludes it entirely. The asymmetry is deliberate
// and mirrors how payroll has always behaved here.
func gateResult(ic paycomponent.IfCondition, ec EvalContext) gateOutcome {
	ref := ec.BasicPay
	if ic.Basis == paycomponent.IfBasisGrossPay {
		ref = ec.GrossPay()
	}

	if ic.Operator == paycomponent.OpRange {
		if ref.LessThan(ic.RangeStart) || ref.GreaterThan(ic.RangeEnd) {
			return gateZero
		}
		return gatePass
	}

	if compareDecimals(ref, ic.Operator, ic.Value) {
		return gatePass
	}
	return gateExclude
}

func compareDecimals(left decimal.Decimal, op paycomponent.Operator, right decimal.Decimal) bool {
	switch op {
	case paycomponent.OpEqual:
		return left.Equal(right)
	case paycomponent.OpNotEqual:
		return !left.Equal(right)
	case paycomponent.OpLessThan:
		return left.LessThan(right)
	case paycomponent.OpGreaterThan:
		return left.GreaterThan(right)
	case paycomponent.OpLessEqual:
		return left.LessThanOrEqual(right)
	case paycomponent.OpGreaterEqual:
		return left.GreaterThanOrEqual(right)
	default:
		return false
	}
}

// conditionHolds evaluates one eligibility condition. A missing
// attribute value makes the condition false; condition evaluation
// never errors out of a payslip computation.
func conditionHolds(cond paycomponent.Condition, ec EvalContext) bool {
	switch cond.Field {
	case paycomponent.FieldChildren:
		if ec.Employee.Children == nil {
			return false
		}
		return compareInts(*ec.Employee.Children, cond.Operator, cond.Value)
	case paycomponent.FieldExperience:
		if ec.Employee.HireDate == nil {
			return false
		}
		return compareInts(ec.Employee.ExperienceMonths(ec.PeriodEnd), cond.Operator, cond.Value)
	case paycomponent.FieldGender:
		return compareStrings(string(ec.Employee.Gender), cond.Operator, cond.Value)
	case paycomponent.FieldMaritalStatus:
		if ec.Employee.MaritalStatus == nil {
			return false
		}
		return compareStrings(string(*ec.Employee.MaritalStatus), cond.Operator, cond.Value)
	case paycomponent.FieldCountry:
		return compareOptionalString(ec.Employee.Country, cond.Operator, cond.Value)
	case paycomponent.FieldState:
		return compareOptionalString(ec.Employee.State, cond.Operator, cond.Value)
	case paycomponent.FieldDepartment:
		return compareOptionalString(ec.Employee.Department, cond.Operator, cond.Value)
	case paycomponent.FieldJobPosition:
		return compareOptionalString(ec.Employee.JobPosition, cond.Operator, cond.Value)
	case paycomponent.FieldPayFrequency:
		return compareStrings(string(ec.Contract.PayFrequency), cond.Operator, cond.Value)
	case paycomponent.FieldWageType:
		return compareStrings(string(ec.Contract.WageType), cond.Operator, cond.Value)
	default:
		return false
	}
}

func compareOptionalString(value *string, op paycomponent.Operator, literal string) bool {
	if value == nil {
		return false
	}
	return compareStrings(*value, op, literal)
}

func compareStrings(value string, op paycomponent.Operator, literal string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	literal = strings.ToLower(strings.TrimSpace(literal))
	switch op {
	case paycomponent.OpEqual:
		return value == literal
	case paycomponent.OpNotEqual:
		return value != literal
	case paycomponent.OpContains:
		return strings.Contains(value, literal)
	case paycomponent.OpLessThan:
		return value < literal
	case paycomponent.OpGreaterThan:
		return value > literal
	case paycomponent.OpLessEqual:
		return value <= literal
	case paycomponent.OpGreaterEqual:
		return value >= literal
	default:
		return false
	}
}

func compareInts(value int, op paycomponent.Operator, literal string) bool {
	parsed, err := decimal.NewFromString(strings.TrimSpace(literal))
	if err != nil {
		return false
	}
	return compareDecimals(decimal.NewFromInt(int64(value)), op, parsed)
}
