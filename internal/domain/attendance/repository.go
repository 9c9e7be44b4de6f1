package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListValidatedByEmployeeRange returns validated records with
	// Date in [start, end], inclusive.
	ListValidatedByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)
}
