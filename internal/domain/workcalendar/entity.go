package workcalendar

import (
	"time"
)

// Holiday is a company holiday spanning one or more days. Recurring
// holidays repeat on the same month/day every year.
type Holiday struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Recurring bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyLeaveRule marks a recurring company-wide non-working weekday.
//
// BasedOnWeek nil means the weekday is off every week. BasedOnWeek
// 0..4 means only the Nth occurrence counted over Sunday-started weeks
// of each month. The two forms deliberately use different week starts
// (Sunday for the Nth-occurrence form, Monday for the weekly form);
// see CompanyLeaveDates in the payslip service before changing either.
type CompanyLeaveRule struct {
	ID          string
	Weekday     time.Weekday
	BasedOnWeek *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
