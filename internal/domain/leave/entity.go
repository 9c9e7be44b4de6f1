package leave

import (
	"time"
)

// PaymentPolicy is the leave type's pay treatment.
type PaymentPolicy string

const (
	PaymentPaid   PaymentPolicy = "paid"
	PaymentUnpaid PaymentPolicy = "unpaid"
)

// DayBreakdown describes how the first or last day of a leave is taken.
type DayBreakdown string

const (
	BreakdownFullDay    DayBreakdown = "full_day"
	BreakdownFirstHalf  DayBreakdown = "first_half"
	BreakdownSecondHalf DayBreakdown = "second_half"
)

// IsHalfDay reports whether the breakdown covers only half the day.
func (b DayBreakdown) IsHalfDay() bool {
	return b == BreakdownFirstHalf || b == BreakdownSecondHalf
}

// ApprovedRequest is a leave request that has passed the approval
// workflow. Payslip computation never sees pending or rejected ones.
type ApprovedRequest struct {
	ID             string
	EmployeeID     string
	LeaveTypeID    string
	LeaveTypeName  string
	Payment        PaymentPolicy
	StartDate      time.Time
	EndDate        time.Time
	StartBreakdown DayBreakdown
	EndBreakdown   DayBreakdown
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Dates expands the request into its calendar dates, inclusive.
func (r ApprovedRequest) Dates() []time.Time {
	var dates []time.Time
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
