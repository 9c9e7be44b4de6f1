package attendance

import (
	"time"
)

// Record is one validated or pending attendance entry. The clock-in
// state machine lives in the attendance service; payslip computation
// only reads records whose Validated flag is set.
type Record struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	ShiftID         *string
	WorkTypeID      *string
	Validated       bool
	WorkedSeconds   int64
	OvertimeSeconds int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
