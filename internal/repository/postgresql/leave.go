package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/leave"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) ListApprovedByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.ApprovedRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lt.name, lt.payment,
			   lr.start_date, lr.end_date, lr.start_breakdown, lr.end_breakdown,
			   lr.created_at, lr.updated_at
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.ApprovedRequest
	for rows.Next() {
		var req leave.ApprovedRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.LeaveTypeName, &req.Payment,
			&req.StartDate, &req.EndDate, &req.StartBreakdown, &req.EndBreakdown,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
