package payslip

import (
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// Ledger classifies one employee's approved leave inside a period.
// Day totals count half-days as 0.5; the date sets keep full-day
// granularity for netting against working days.
type Ledger struct {
	PaidDays    decimal.Decimal
	UnpaidDays  decimal.Decimal
	PaidDates   DateSet
	UnpaidDates DateSet
}

var halfDay = decimal.NewFromFloat(0.5)

// BuildLeaveLedger expands the requests into dates inside
// [start, end], splits them paid/unpaid by the leave type's payment
// policy, and subtracts the non-working dates from both sets.
//
// A date covered by two overlapping half-day leaves is still one
// half-day occurrence: occurrences are summed over distinct dates, the
// requests all belonging to a single employee.
func BuildLeaveLedger(requests []leave.ApprovedRequest, start, end time.Time, nonWorking DateSet) Ledger {
	start, end = dateOnly(start), dateOnly(end)
	ledger := Ledger{
		PaidDates:   make(DateSet),
		UnpaidDates: make(DateSet),
	}
	paidHalf := make(DateSet)
	unpaidHalf := make(DateSet)

	for _, req := range requests {
		for _, d := range req.Dates() {
			d = dateOnly(d)
			if d.Before(start) || d.After(end) {
				continue
			}
			if nonWorking.Contains(d) {
				continue
			}
			half := isHalfDay(req, d)
			if req.Payment == leave.PaymentUnpaid {
				ledger.UnpaidDates.Add(d)
				if half {
					unpaidHalf.Add(d)
				}
			} else {
				ledger.PaidDates.Add(d)
				if half {
					paidHalf.Add(d)
				}
			}
		}
	}

	ledger.PaidDays = decimal.NewFromInt(int64(len(ledger.PaidDates))).
		Sub(halfDay.Mul(decimal.NewFromInt(int64(len(paidHalf)))))
	ledger.UnpaidDays = decimal.NewFromInt(int64(len(ledger.UnpaidDates))).
		Sub(halfDay.Mul(decimal.NewFromInt(int64(len(unpaidHalf)))))
	return ledger
}

// isHalfDay reports whether d is taken as a half day under req: the
// start date with a half-day start breakdown, or the end date of a
// multi-day leave with a half-day end breakdown.
func isHalfDay(req leave.ApprovedRequest, d time.Time) bool {
	startDate := dateOnly(req.StartDate)
	endDate := dateOnly(req.EndDate)
	if d.Equal(startDate) && req.StartBreakdown.IsHalfDay() {
		return true
	}
	if d.Equal(endDate) && !startDate.Equal(endDate) && req.EndBreakdown.IsHalfDay() {
		return true
	}
	return false
}
