package payslip

import (
	"testing"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/attendance"
	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func evalContext() EvalContext {
	basic := dec("3000")
	return EvalContext{
		Employee: employee.Employee{
			ID:       "emp-1",
			Gender:   employee.GenderFemale,
			IsActive: true,
		},
		Contract:    contract.Contract{WageType: contract.WageTypeMonthly, PayFrequency: contract.PayFrequencyMonthly},
		PeriodStart: date(2025, time.July, 1),
		PeriodEnd:   date(2025, time.July, 31),
		BasicPay:    basic,
		GrossPay:    func() decimal.Decimal { return dec("3500") },
	}
}

func TestEvaluateComponent_PerAttendanceWithMaxLimit(t *testing.T) {
	ec := evalContext()
	for i := 0; i < 10; i++ {
		ec.Attendance.Records = append(ec.Attendance.Records, attendance.Record{Validated: true})
	}
	def := paycomponent.Definition{
		Title:            "Meal Allowance",
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		Basis:            paycomponent.PerAttendance{Amount: dec("50")},
		HasMaxLimit:      true,
		MaximumAmount:    dec("400"),
	}

	eval := EvaluateComponent(def, ec)

	assert.True(t, eval.Applies)
	assert.True(t, eval.Amount.Equal(dec("400")), "got %s", eval.Amount)
}

func TestEvaluateComponent_MaxLimitNeverRaises(t *testing.T) {
	ec := evalContext()
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("100"),
		HasMaxLimit:      true,
		MaximumAmount:    dec("500"),
	}

	eval := EvaluateComponent(def, ec)

	assert.True(t, eval.Amount.Equal(dec("100")), "got %s", eval.Amount)
}

func TestEvaluateComponent_ConditionMismatchSkips(t *testing.T) {
	ec := evalContext()
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("100"),
		Conditions: []paycomponent.Condition{
			{Field: paycomponent.FieldGender, Operator: paycomponent.OpEqual, Value: "male"},
		},
	}

	eval := EvaluateComponent(def, ec)
	assert.False(t, eval.Applies)
}

func TestEvaluateComponent_MissingAttributeFailsCondition(t *testing.T) {
	ec := evalContext()
	ec.Employee.Children = nil
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("100"),
		Conditions: []paycomponent.Condition{
			{Field: paycomponent.FieldChildren, Operator: paycomponent.OpGreaterThan, Value: "0"},
		},
	}

	eval := EvaluateComponent(def, ec)
	assert.False(t, eval.Applies)
}

func TestEvaluateComponent_PerChildWithoutChildrenIsZero(t *testing.T) {
	ec := evalContext()
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		Basis:            paycomponent.PerChild{Amount: dec("75")},
	}

	eval := EvaluateComponent(def, ec)

	assert.True(t, eval.Applies)
	assert.True(t, eval.Amount.IsZero())

	ec.Employee.Children = intPtr(2)
	eval = EvaluateComponent(def, ec)
	assert.True(t, eval.Amount.Equal(dec("150")), "got %s", eval.Amount)
}

func TestEvaluateComponent_ThresholdFailExcludes(t *testing.T) {
	ec := evalContext()
	def := paycomponent.Definition{
		Kind:             paycomponent.KindDeduction,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("100"),
		IfCondition: &paycomponent.IfCondition{
			Basis:    paycomponent.IfBasisBasicPay,
			Operator: paycomponent.OpGreaterThan,
			Value:    dec("5000"),
		},
	}

	eval := EvaluateComponent(def, ec)
	assert.False(t, eval.Applies, "a failed threshold drops the component entirely")
}

func TestEvaluateComponent_RangeFailZeroes(t *testing.T) {
	ec := evalContext()
	def := paycomponent.Definition{
		Kind:             paycomponent.KindDeduction,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("100"),
		IfCondition: &paycomponent.IfCondition{
			Basis:      paycomponent.IfBasisBasicPay,
			Operator:   paycomponent.OpRange,
			RangeStart: dec("0"),
			RangeEnd:   dec("2000"),
		},
	}

	eval := EvaluateComponent(def, ec)

	assert.True(t, eval.Applies, "a failed range keeps the component itemized")
	assert.True(t, eval.Amount.IsZero(), "got %s", eval.Amount)
}

func TestEvaluateComponent_Targeting(t *testing.T) {
	base := paycomponent.Definition{
		Kind:     paycomponent.KindAllowance,
		IsActive: true,
		IsFixed:  true,
		Amount:   dec("100"),
	}

	tests := []struct {
		name    string
		mutate  func(*paycomponent.Definition, *EvalContext)
		applies bool
	}{
		{
			name: "excluded employee",
			mutate: func(def *paycomponent.Definition, ec *EvalContext) {
				def.IncludeAllActive = true
				def.ExcludedEmployeeIDs = []string{"emp-1"}
			},
			applies: false,
		},
		{
			name: "specific list hit",
			mutate: func(def *paycomponent.Definition, ec *EvalContext) {
				def.SpecificEmployeeIDs = []string{"emp-1", "emp-2"}
			},
			applies: true,
		},
		{
			name: "specific list miss",
			mutate: func(def *paycomponent.Definition, ec *EvalContext) {
				def.SpecificEmployeeIDs = []string{"emp-2"}
			},
			applies: false,
		},
		{
			name: "include all requires active employee",
			mutate: func(def *paycomponent.Definition, ec *EvalContext) {
				def.IncludeAllActive = true
				ec.Employee.IsActive = false
			},
			applies: false,
		},
		{
			name: "condition-only targeting",
			mutate: func(def *paycomponent.Definition, ec *EvalContext) {
				def.Conditions = []paycomponent.Condition{
					{Field: paycomponent.FieldGender, Operator: paycomponent.OpEqual, Value: "female"},
				}
			},
			applies: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base
			ec := evalContext()
			tt.mutate(&def, &ec)
			assert.Equal(t, tt.applies, EvaluateComponent(def, ec).Applies)
		})
	}
}

func TestEvaluateComponent_OneTimeDateOutsidePeriod(t *testing.T) {
	ec := evalContext()
	oneTime := date(2025, time.August, 15)
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("1000"),
		OneTimeDate:      &oneTime,
	}

	assert.False(t, EvaluateComponent(def, ec).Applies)

	inside := date(2025, time.July, 15)
	def.OneTimeDate = &inside
	assert.True(t, EvaluateComponent(def, ec).Applies)
}

func TestEvaluateComponent_ExperienceCondition(t *testing.T) {
	ec := evalContext()
	hire := date(2023, time.July, 1)
	ec.Employee.HireDate = &hire
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec("250"),
		Conditions: []paycomponent.Condition{
			{Field: paycomponent.FieldExperience, Operator: paycomponent.OpGreaterEqual, Value: "24"},
		},
	}

	assert.True(t, EvaluateComponent(def, ec).Applies)

	recent := date(2025, time.January, 1)
	ec.Employee.HireDate = &recent
	assert.False(t, EvaluateComponent(def, ec).Applies)
}

func TestEvaluateComponent_PerShiftCountsMatchingRecords(t *testing.T) {
	ec := evalContext()
	ec.Attendance.Records = []attendance.Record{
		{Validated: true, ShiftID: strPtr("night")},
		{Validated: true, ShiftID: strPtr("night")},
		{Validated: true, ShiftID: strPtr("day")},
		{Validated: true},
	}
	def := paycomponent.Definition{
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		Basis:            paycomponent.PerShift{ShiftID: "night", Amount: dec("40")},
	}

	eval := EvaluateComponent(def, ec)
	assert.True(t, eval.Amount.Equal(dec("80")), "got %s", eval.Amount)
}
