package payslip

import (
	"errors"
	"log/slog"

	"github.com/hriscore/payroll-engine-go/internal/domain/attendance"
	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/domain/leave"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/hriscore/payroll-engine-go/internal/domain/workcalendar"
	"github.com/shopspring/decimal"
)

// Inputs is the immutable snapshot a payslip computation runs on. The
// service assembles it before the pipeline starts; nothing here is
// shared or mutated across computations, so any number of pipelines
// may run concurrently.
type Inputs struct {
	Employee          employee.Employee
	Contract          contract.Contract
	Period            payslip.Period
	Attendance        []attendance.Record
	Leaves            []leave.ApprovedRequest
	Holidays          []workcalendar.Holiday
	CompanyLeaveRules []workcalendar.CompanyLeaveRule
	Allowances        []paycomponent.Definition
	Deductions        []paycomponent.Definition
	// TaxBrackets for the contract's filing status; empty means no
	// bracket tax applies.
	TaxBrackets []tax.Bracket
}

// Pipeline owns the fixed calculation order. Steps run strictly
// sequentially; the only re-entry is the single second pass for
// net-pay-based deductions, which must happen exactly once and only
// after every other bucket is settled.
type Pipeline struct {
	logger *slog.Logger
}

func NewPipeline(logger *slog.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Compute produces the itemized payslip for one employee and period.
func (p *Pipeline) Compute(in Inputs) (payslip.Result, error) {
	cal := NewCalendar(in.Holidays, in.CompanyLeaveRules)
	working := cal.WorkingDays(in.Period.Start, in.Period.End)
	ledger := BuildLeaveLedger(in.Leaves, in.Period.Start, in.Period.End, working.ExcludedDates)
	att := SummarizeAttendance(in.Attendance, in.Period.Start, in.Period.End)

	// Step 1: basic pay and loss of pay.
	wage, err := ComputeBasicPay(in.Contract, in.Period.Start, in.Period.End, cal, ledger, att, in.Leaves)
	if err != nil {
		return payslip.Result{}, err
	}
	basicPay := wage.BasicPay

	result := payslip.Result{
		EmployeeID:     in.Employee.ID,
		ContractID:     in.Contract.ID,
		PeriodStart:    in.Period.Start,
		PeriodEnd:      in.Period.End,
		ContractWage:   in.Contract.Wage,
		MonthBreakdown: wage.Segments,
		ConflictDates:  ConflictDates(working, att, ledger),
		Status:         payslip.StatusDraft,
	}

	ec := EvalContext{
		Employee:    in.Employee,
		Contract:    in.Contract,
		PeriodStart: in.Period.Start,
		PeriodEnd:   in.Period.End,
		Attendance:  att,
		Logger:      p.logger,
	}

	// Step 2: update-compensation deductions against basic pay. These
	// shrink the head directly instead of joining a deduction bucket.
	allowanceTotal := decimal.Zero
	ec.BasicPay = basicPay
	ec.GrossPay = func() decimal.Decimal { return basicPay.Add(allowanceTotal) }
	for _, def := range compensationDeductions(in.Deductions, paycomponent.CompensationBasicPay) {
		ec.BasicPay = basicPay
		if eval := EvaluateComponent(def, ec); eval.Applies {
			basicPay = basicPay.Sub(eval.Amount)
			result.BasicPayAdjustments = append(result.BasicPayAdjustments, lineItem(def, eval.Amount))
		}
	}

	// Step 3: loss of pay, when contract policy charges it to basic.
	lossDeducted := false
	if in.Contract.DeductLeaveFromBasicPay {
		basicPay = basicPay.Sub(wage.LossOfPay)
		lossDeducted = true
	}
	ec.BasicPay = basicPay

	// Step 4: allowances. Gross pay inside the closure grows as each
	// allowance lands, so later gross-based allowances see earlier
	// ones.
	nonTaxable := decimal.Zero
	for _, def := range in.Allowances {
		if eval := EvaluateComponent(def, ec); eval.Applies {
			result.Allowances = append(result.Allowances, lineItem(def, eval.Amount))
			allowanceTotal = allowanceTotal.Add(eval.Amount)
			if !def.IsTaxable {
				nonTaxable = nonTaxable.Add(eval.Amount)
			}
		}
	}

	// Step 5: gross pay, then update-compensation deductions against
	// it.
	grossPay := basicPay.Add(allowanceTotal)
	ec.GrossPay = func() decimal.Decimal { return grossPay }
	for _, def := range compensationDeductions(in.Deductions, paycomponent.CompensationGrossPay) {
		if eval := EvaluateComponent(def, ec); eval.Applies {
			grossPay = grossPay.Sub(eval.Amount)
			result.GrossPayAdjustments = append(result.GrossPayAdjustments, lineItem(def, eval.Amount))
		}
	}

	// Step 6: taxable gross pay = gross − non-taxable allowances −
	// pre-tax deductions. Pre-tax deductions that reference taxable
	// gross see it before their own subtraction.
	ec.TaxableGrossPay = grossPay.Sub(nonTaxable)

	pretaxTotal := decimal.Zero
	for _, def := range regularDeductions(in.Deductions) {
		if !def.IsPretax || def.IsTax || isNetPayBased(def) {
			continue
		}
		if eval := EvaluateComponent(def, ec); eval.Applies {
			result.PretaxDeductions = append(result.PretaxDeductions, lineItem(def, eval.Amount))
			pretaxTotal = pretaxTotal.Add(eval.Amount)
		}
	}
	taxableGross := grossPay.Sub(nonTaxable).Sub(pretaxTotal)
	ec.TaxableGrossPay = taxableGross
	result.TaxableGrossPay = taxableGross

	// Step 7: post-tax and tax deductions, then the bracket tax.
	// Net-pay-based deductions are deferred to the second pass.
	posttaxTotal := decimal.Zero
	taxDeductionTotal := decimal.Zero
	for _, def := range regularDeductions(in.Deductions) {
		if def.IsPretax || isNetPayBased(def) {
			continue
		}
		eval := EvaluateComponent(def, ec)
		if !eval.Applies {
			continue
		}
		if def.IsTax {
			result.TaxDeductions = append(result.TaxDeductions, lineItem(def, eval.Amount))
			taxDeductionTotal = taxDeductionTotal.Add(eval.Amount)
		} else {
			result.PosttaxDeductions = append(result.PosttaxDeductions, lineItem(def, eval.Amount))
			posttaxTotal = posttaxTotal.Add(eval.Amount)
		}
	}

	bracketTax := decimal.Zero
	if len(in.TaxBrackets) > 0 {
		bracketTax, err = ComputeBracketTax(in.TaxBrackets, taxableGross, in.Period.Days(), in.Period.Start.Year())
		if err != nil {
			if !errors.Is(err, tax.ErrTaxBracketGap) {
				return payslip.Result{}, err
			}
			// Broken bracket configuration kills the tax figure but
			// not the rest of the payslip.
			bracketTax = decimal.Zero
			result.Warnings = append(result.Warnings, "tax brackets misconfigured; bracket tax omitted")
			if p.logger != nil {
				p.logger.Warn("tax bracket configuration invalid",
					slog.String("employee_id", in.Employee.ID),
				)
			}
		}
	}

	// Step 8: totals, net pay, then update-compensation deductions
	// against net pay.
	totalDeductions := pretaxTotal.Add(posttaxTotal).Add(taxDeductionTotal).Add(bracketTax)
	if !lossDeducted {
		totalDeductions = totalDeductions.Add(wage.LossOfPay)
	}
	netPay := grossPay.Sub(totalDeductions)
	ec.NetPay = netPay
	for _, def := range compensationDeductions(in.Deductions, paycomponent.CompensationNetPay) {
		if eval := EvaluateComponent(def, ec); eval.Applies {
			netPay = netPay.Sub(eval.Amount)
			result.NetPayAdjustments = append(result.NetPayAdjustments, lineItem(def, eval.Amount))
		}
	}

	// Step 9: the single second pass. Net-pay-based deductions are
	// evaluated against the step-8 net pay, never against each other's
	// output; no fixed-point iteration.
	secondPassBase := netPay
	ec.NetPay = secondPassBase
	secondPassTotal := decimal.Zero
	for _, def := range regularDeductions(in.Deductions) {
		if !isNetPayBased(def) {
			continue
		}
		if eval := EvaluateComponent(def, ec); eval.Applies {
			result.NetPayDeductions = append(result.NetPayDeductions, lineItem(def, eval.Amount))
			secondPassTotal = secondPassTotal.Add(eval.Amount)
		}
	}
	netPay = secondPassBase.Sub(secondPassTotal)
	totalDeductions = totalDeductions.Add(secondPassTotal)

	result.BasicPay = basicPay
	result.GrossPay = grossPay
	result.LossOfPay = wage.LossOfPay
	result.BracketTax = bracketTax
	result.TotalDeductions = totalDeductions
	result.NetPay = netPay

	finalize(&result)
	return result, nil
}

func compensationDeductions(defs []paycomponent.Definition, head paycomponent.CompensationHead) []paycomponent.Definition {
	var out []paycomponent.Definition
	for _, def := range defs {
		if def.UpdateCompensation == head && head != paycomponent.CompensationNone {
			out = append(out, def)
		}
	}
	return out
}

// regularDeductions are the ones that land in deduction buckets, i.e.
// everything without an update-compensation head.
func regularDeductions(defs []paycomponent.Definition) []paycomponent.Definition {
	var out []paycomponent.Definition
	for _, def := range defs {
		if def.UpdateCompensation == paycomponent.CompensationNone {
			out = append(out, def)
		}
	}
	return out
}

func isNetPayBased(def paycomponent.Definition) bool {
	if def.IsFixed || def.Basis == nil {
		return false
	}
	_, ok := def.Basis.(paycomponent.PercentOfNetPay)
	return ok
}

func lineItem(def paycomponent.Definition, amount decimal.Decimal) payslip.LineItem {
	return payslip.LineItem{ComponentID: def.ID, Title: def.Title, Amount: amount}
}

// finalize applies the two-decimal display rounding to every figure on
// the payslip. Intermediates keep full precision up to this point.
func finalize(r *payslip.Result) {
	r.ContractWage = r.ContractWage.Round(2)
	r.BasicPay = r.BasicPay.Round(2)
	r.GrossPay = r.GrossPay.Round(2)
	r.TaxableGrossPay = r.TaxableGrossPay.Round(2)
	r.LossOfPay = r.LossOfPay.Round(2)
	r.BracketTax = r.BracketTax.Round(2)
	r.TotalDeductions = r.TotalDeductions.Round(2)
	r.NetPay = r.NetPay.Round(2)
	for _, items := range [][]payslip.LineItem{
		r.Allowances,
		r.BasicPayAdjustments, r.GrossPayAdjustments, r.NetPayAdjustments,
		r.PretaxDeductions, r.PosttaxDeductions, r.TaxDeductions,
		r.NetPayDeductions,
	} {
		for i := range items {
			items[i].Amount = items[i].Amount.Round(2)
		}
	}
}
