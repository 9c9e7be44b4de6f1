package payslip

import (
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/leave"
	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// WageResult is the wage engine's output. BasicPay excludes the
// loss-of-pay subtraction: the pipeline applies it after the basic-pay
// update-compensation deductions, which come first in the fixed order.
type WageResult struct {
	BasicPay   decimal.Decimal
	LossOfPay  decimal.Decimal
	PerDayWage decimal.Decimal
	Segments   []payslip.MonthSegment
}

// ComputeBasicPay computes basic pay and loss-of-pay for the
// contract's wage type over [start, end].
func ComputeBasicPay(
	c contract.Contract,
	start, end time.Time,
	cal *Calendar,
	ledger Ledger,
	att Summary,
	leaves []leave.ApprovedRequest,
) (WageResult, error) {
	segments := cal.MonthSegments(start, end)

	switch c.WageType {
	case contract.WageTypeHourly:
		return hourlyBasicPay(c, att, segments), nil
	case contract.WageTypeDaily:
		return dailyBasicPay(c, cal, start, end, ledger, leaves, segments), nil
	case contract.WageTypeMonthly:
		return monthlyBasicPay(c, start, end, ledger, leaves, segments)
	default:
		return WageResult{}, payslip.ErrUnsupportedWageType
	}
}

// hourlyBasicPay pays straight time only; overtime is compensated via
// overtime-based allowances, never through basic pay. Hourly contracts
// have no loss-of-pay, unworked hours are simply unpaid.
func hourlyBasicPay(c contract.Contract, att Summary, segments []payslip.MonthSegment) WageResult {
	hourRate := c.Wage.Div(secondsPerHour)
	basic := decimal.Zero
	for _, rec := range att.Records {
		straight := rec.WorkedSeconds - rec.OvertimeSeconds
		if straight < 0 {
			straight = 0
		}
		basic = basic.Add(decimal.NewFromInt(straight).Mul(hourRate))
	}
	return WageResult{BasicPay: basic, LossOfPay: decimal.Zero, Segments: segments}
}

func dailyBasicPay(
	c contract.Contract,
	cal *Calendar,
	start, end time.Time,
	ledger Ledger,
	leaves []leave.ApprovedRequest,
	segments []payslip.MonthSegment,
) WageResult {
	workingDays := cal.WorkingDays(start, end).Total
	basic := c.Wage.Mul(decimal.NewFromInt(int64(workingDays)))

	effectiveUnpaid := effectiveUnpaidDays(ledger, leaves, start, end)
	perLeave := c.Wage
	if !c.CalculateDailyLeaveAmount {
		perLeave = c.DeductionForOneLeaveAmount
	}
	loss := effectiveUnpaid.Mul(perLeave)

	for i := range segments {
		segments[i].PerDayWage = c.Wage
	}
	return WageResult{BasicPay: basic, LossOfPay: loss, PerDayWage: c.Wage, Segments: segments}
}

func monthlyBasicPay(
	c contract.Contract,
	start, end time.Time,
	ledger Ledger,
	leaves []leave.ApprovedRequest,
	segments []payslip.MonthSegment,
) (WageResult, error) {
	basic := decimal.Zero
	for i, seg := range segments {
		if seg.WorkingDaysInMonth == 0 {
			return WageResult{}, payslip.ErrZeroWorkingDays
		}
		perDay := c.Wage.Div(decimal.NewFromInt(int64(seg.WorkingDaysInMonth)))
		segments[i].PerDayWage = perDay
		basic = basic.Add(perDay.Mul(decimal.NewFromInt(int64(seg.WorkingDaysInSegment))))
	}

	// Loss of pay uses the daily-equivalent wage of the period's first
	// month.
	perDay := segments[0].PerDayWage
	effectiveUnpaid := effectiveUnpaidDays(ledger, leaves, start, end)
	loss := effectiveUnpaid.Mul(perDay)

	return WageResult{BasicPay: basic, LossOfPay: loss, PerDayWage: perDay, Segments: segments}, nil
}

// effectiveUnpaidDays is the unpaid leave day count with half-day
// starts and ends discounted at 0.5 each. The half-day count looks at
// request boundaries inside the range, not at the netted date sets.
func effectiveUnpaidDays(ledger Ledger, leaves []leave.ApprovedRequest, start, end time.Time) decimal.Decimal {
	start, end = dateOnly(start), dateOnly(end)
	halfOccurrences := 0
	for _, req := range leaves {
		if req.Payment != leave.PaymentUnpaid {
			continue
		}
		reqStart := dateOnly(req.StartDate)
		reqEnd := dateOnly(req.EndDate)
		if !reqStart.Before(start) && !reqStart.After(end) && req.StartBreakdown.IsHalfDay() {
			halfOccurrences++
		}
		if !reqEnd.Before(start) && !reqEnd.After(end) && !reqStart.Equal(reqEnd) && req.EndBreakdown.IsHalfDay() {
			halfOccurrences++
		}
	}

	unpaidDays := decimal.NewFromInt(int64(len(ledger.UnpaidDates)))
	return unpaidDays.Sub(halfDay.Mul(decimal.NewFromInt(int64(halfOccurrences))))
}
