package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/workcalendar"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) workcalendar.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) ListHolidaysInRange(ctx context.Context, start, end time.Time) ([]workcalendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	// Recurring holidays are fetched unconditionally; the calendar
	// engine projects them into the requested years.
	query := `
		SELECT id, name, start_date, end_date, recurring, created_at, updated_at
		FROM holidays
		WHERE recurring = true
		   OR (start_date <= $2 AND COALESCE(end_date, start_date) >= $1)
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []workcalendar.Holiday
	for rows.Next() {
		var h workcalendar.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate, &h.Recurring, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *calendarRepository) ListCompanyLeaveRules(ctx context.Context) ([]workcalendar.CompanyLeaveRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, weekday, based_on_week, created_at, updated_at
		FROM company_leave_rules
		ORDER BY weekday
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list company leave rules: %w", err)
	}
	defer rows.Close()

	var rules []workcalendar.CompanyLeaveRule
	for rows.Next() {
		var rule workcalendar.CompanyLeaveRule
		var weekday int
		if err := rows.Scan(&rule.ID, &weekday, &rule.BasedOnWeek, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company leave rule: %w", err)
		}
		rule.Weekday = time.Weekday(weekday)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
