package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// ListApprovedByEmployeeRange returns approved requests whose
	// [StartDate, EndDate] span intersects [start, end].
	ListApprovedByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]ApprovedRequest, error)
}
