package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/attendance"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListValidatedByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shift_id, work_type_id, validated,
			   worked_seconds, overtime_seconds, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND validated = true AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ShiftID, &rec.WorkTypeID, &rec.Validated,
			&rec.WorkedSeconds, &rec.OvertimeSeconds, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
