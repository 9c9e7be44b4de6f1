package payslip

import (
	"testing"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/domain/leave"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedAllowance(title, amount string, taxable bool) paycomponent.Definition {
	return paycomponent.Definition{
		Title:            title,
		Kind:             paycomponent.KindAllowance,
		IncludeAllActive: true,
		IsActive:         true,
		IsFixed:          true,
		Amount:           dec(amount),
		IsTaxable:        taxable,
	}
}

func pipelineInputs() Inputs {
	return Inputs{
		Employee: employee.Employee{ID: "emp-1", IsActive: true},
		Contract: contract.Contract{
			ID:       "con-1",
			WageType: contract.WageTypeMonthly,
			Wage:     dec("3000"),
		},
		Period: payslip.Period{
			Start: date(2025, time.July, 1),
			End:   date(2025, time.July, 31),
		},
		Allowances: []paycomponent.Definition{
			fixedAllowance("Transport", "500", true),
			fixedAllowance("Meal", "200", false),
		},
		Deductions: []paycomponent.Definition{
			{
				Title:            "Provident Fund",
				Kind:             paycomponent.KindDeduction,
				IncludeAllActive: true,
				IsActive:         true,
				IsFixed:          true,
				Amount:           dec("100"),
				IsPretax:         true,
			},
			{
				Title:            "Withholding",
				Kind:             paycomponent.KindDeduction,
				IncludeAllActive: true,
				IsActive:         true,
				Basis:            paycomponent.PercentOfTaxableGrossPay{Rate: dec("10")},
				IsTax:            true,
			},
			{
				Title:            "Union Dues",
				Kind:             paycomponent.KindDeduction,
				IncludeAllActive: true,
				IsActive:         true,
				Basis:            paycomponent.PercentOfNetPay{Rate: dec("10")},
			},
		},
	}
}

func TestPipeline_FullComputation(t *testing.T) {
	p := NewPipeline(nil)

	result, err := p.Compute(pipelineInputs())
	require.NoError(t, err)

	assert.True(t, result.BasicPay.Equal(dec("3000")), "basic %s", result.BasicPay)
	assert.True(t, result.GrossPay.Equal(dec("3700")), "gross %s", result.GrossPay)
	// 3700 gross - 200 non-taxable - 100 pretax.
	assert.True(t, result.TaxableGrossPay.Equal(dec("3400")), "taxable %s", result.TaxableGrossPay)

	require.Len(t, result.PretaxDeductions, 1)
	require.Len(t, result.TaxDeductions, 1)
	assert.True(t, result.TaxDeductions[0].Amount.Equal(dec("340")), "tax %s", result.TaxDeductions[0].Amount)

	// Net before the second pass: 3700 - 100 - 340 = 3260; the
	// net-pay-based deduction takes 10% of that.
	require.Len(t, result.NetPayDeductions, 1)
	assert.True(t, result.NetPayDeductions[0].Amount.Equal(dec("326")), "second pass %s", result.NetPayDeductions[0].Amount)
	assert.True(t, result.NetPay.Equal(dec("2934")), "net %s", result.NetPay)
	assert.True(t, result.TotalDeductions.Equal(dec("766")), "total %s", result.TotalDeductions)
	assert.Equal(t, payslip.StatusDraft, result.Status)
}

func TestPipeline_Deterministic(t *testing.T) {
	p := NewPipeline(nil)

	first, err := p.Compute(pipelineInputs())
	require.NoError(t, err)
	second, err := p.Compute(pipelineInputs())
	require.NoError(t, err)

	assert.True(t, first.NetPay.Equal(second.NetPay))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.Equal(t, len(first.Allowances), len(second.Allowances))
}

func TestPipeline_DeductionInputOrderIrrelevant(t *testing.T) {
	p := NewPipeline(nil)

	in := pipelineInputs()
	reversed := pipelineInputs()
	for i, j := 0, len(reversed.Deductions)-1; i < j; i, j = i+1, j-1 {
		reversed.Deductions[i], reversed.Deductions[j] = reversed.Deductions[j], reversed.Deductions[i]
	}

	a, err := p.Compute(in)
	require.NoError(t, err)
	b, err := p.Compute(reversed)
	require.NoError(t, err)

	assert.True(t, a.NetPay.Equal(b.NetPay), "%s vs %s", a.NetPay, b.NetPay)
	assert.True(t, a.TotalDeductions.Equal(b.TotalDeductions))
}

func TestPipeline_SecondPassSharesOneBase(t *testing.T) {
	p := NewPipeline(nil)

	in := pipelineInputs()
	in.Deductions = append(in.Deductions, paycomponent.Definition{
		Title:            "Loan Repayment",
		Kind:             paycomponent.KindDeduction,
		IncludeAllActive: true,
		IsActive:         true,
		Basis:            paycomponent.PercentOfNetPay{Rate: dec("10")},
	})

	result, err := p.Compute(in)
	require.NoError(t, err)

	// Both net-pay-based deductions read the step-8 net pay, never each
	// other's output.
	require.Len(t, result.NetPayDeductions, 2)
	assert.True(t, result.NetPayDeductions[0].Amount.Equal(dec("326")))
	assert.True(t, result.NetPayDeductions[1].Amount.Equal(dec("326")))
	assert.True(t, result.NetPay.Equal(dec("2608")), "net %s", result.NetPay)
}

func TestPipeline_BracketTax(t *testing.T) {
	p := NewPipeline(nil)

	in := pipelineInputs()
	in.TaxBrackets = []tax.Bracket{
		bracket("0", "", "0.1"),
	}

	result, err := p.Compute(in)
	require.NoError(t, err)

	// A single unbounded 10% bracket taxes the period income flat.
	assert.True(t, result.BracketTax.Equal(dec("340")), "bracket tax %s", result.BracketTax)
	assert.Empty(t, result.Warnings)
}

func TestPipeline_BracketGapYieldsPartialResult(t *testing.T) {
	p := NewPipeline(nil)

	in := pipelineInputs()
	in.TaxBrackets = []tax.Bracket{
		bracket("0", "1000", "0.1"),
		bracket("2000", "", "0.2"),
	}

	result, err := p.Compute(in)
	require.NoError(t, err)

	assert.True(t, result.BracketTax.IsZero())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "tax brackets misconfigured")
	assert.True(t, result.NetPay.Equal(dec("2934")), "the rest of the payslip still computes, got %s", result.NetPay)
}

func TestPipeline_UpdateCompensationShrinksHead(t *testing.T) {
	p := NewPipeline(nil)

	in := pipelineInputs()
	in.Allowances = nil
	in.Deductions = []paycomponent.Definition{
		{
			Title:              "Salary Advance Recovery",
			Kind:               paycomponent.KindDeduction,
			IncludeAllActive:   true,
			IsActive:           true,
			IsFixed:            true,
			Amount:             dec("100"),
			UpdateCompensation: paycomponent.CompensationBasicPay,
		},
	}

	result, err := p.Compute(in)
	require.NoError(t, err)

	assert.True(t, result.BasicPay.Equal(dec("2900")), "basic %s", result.BasicPay)
	require.Len(t, result.BasicPayAdjustments, 1)
	assert.True(t, result.TotalDeductions.IsZero(), "adjustments never join the deduction total")
	assert.True(t, result.NetPay.Equal(dec("2900")))
}

func TestPipeline_LossOfPayPlacementByContractPolicy(t *testing.T) {
	newInputs := func(deductFromBasic bool) Inputs {
		in := pipelineInputs()
		in.Allowances = nil
		in.Deductions = nil
		in.Contract.Wage = dec("3100")
		in.Contract.DeductLeaveFromBasicPay = deductFromBasic
		in.Leaves = []leave.ApprovedRequest{
			{
				Payment:        leave.PaymentUnpaid,
				StartDate:      date(2025, time.July, 7),
				EndDate:        date(2025, time.July, 7),
				StartBreakdown: leave.BreakdownFullDay,
				EndBreakdown:   leave.BreakdownFullDay,
			},
		}
		return in
	}
	p := NewPipeline(nil)

	fromBasic, err := p.Compute(newInputs(true))
	require.NoError(t, err)
	fromNet, err := p.Compute(newInputs(false))
	require.NoError(t, err)

	// Per-day wage is 100 in July 2025 either way; only the placement
	// of the loss differs.
	assert.True(t, fromBasic.LossOfPay.Equal(dec("100")))
	assert.True(t, fromBasic.BasicPay.Equal(dec("3000")), "basic %s", fromBasic.BasicPay)
	assert.True(t, fromBasic.TotalDeductions.IsZero())

	assert.True(t, fromNet.BasicPay.Equal(dec("3100")), "basic %s", fromNet.BasicPay)
	assert.True(t, fromNet.TotalDeductions.Equal(dec("100")))

	assert.True(t, fromBasic.NetPay.Equal(fromNet.NetPay), "%s vs %s", fromBasic.NetPay, fromNet.NetPay)
}
