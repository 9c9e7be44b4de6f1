package workcalendar

import (
	"context"
	"time"
)

type CalendarRepository interface {
	// ListHolidaysInRange returns holidays whose span intersects
	// [start, end], including recurring holidays that recur into it.
	ListHolidaysInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	ListCompanyLeaveRules(ctx context.Context) ([]CompanyLeaveRule, error)
}
