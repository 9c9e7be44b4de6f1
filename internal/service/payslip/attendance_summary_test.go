package payslip

import (
	"testing"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeAttendance_FiltersValidatedInRange(t *testing.T) {
	records := []attendance.Record{
		{Date: date(2025, time.June, 2), Validated: true, WorkedSeconds: 28800, OvertimeSeconds: 3600},
		{Date: date(2025, time.June, 3), Validated: false, WorkedSeconds: 28800},
		{Date: date(2025, time.May, 30), Validated: true, WorkedSeconds: 28800},
	}

	summary := SummarizeAttendance(records, date(2025, time.June, 1), date(2025, time.June, 30))

	require.Len(t, summary.Records, 1)
	assert.Equal(t, int64(28800), summary.TotalWorkedSeconds)
	assert.Equal(t, int64(3600), summary.TotalOvertimeSeconds)
	assert.True(t, summary.PresentDates.Contains(date(2025, time.June, 2)))
	assert.False(t, summary.PresentDates.Contains(date(2025, time.June, 3)))
}

func TestConflictDates_WorkingDaysWithoutCoverage(t *testing.T) {
	cal := NewCalendar(nil, nil)
	working := cal.WorkingDays(date(2025, time.June, 2), date(2025, time.June, 5))

	summary := SummarizeAttendance([]attendance.Record{
		{Date: date(2025, time.June, 2), Validated: true},
	}, date(2025, time.June, 2), date(2025, time.June, 5))

	ledger := Ledger{PaidDates: make(DateSet), UnpaidDates: make(DateSet)}
	ledger.PaidDates.Add(date(2025, time.June, 3))

	conflicts := ConflictDates(working, summary, ledger)

	require.Len(t, conflicts, 2)
	assert.Equal(t, date(2025, time.June, 4), conflicts[0])
	assert.Equal(t, date(2025, time.June, 5), conflicts[1])
}
