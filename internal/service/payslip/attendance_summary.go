package payslip

import (
	"sort"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/attendance"
)

// Summary aggregates one employee's validated attendance in a period.
type Summary struct {
	PresentDates         DateSet
	TotalWorkedSeconds   int64
	TotalOvertimeSeconds int64
	Records              []attendance.Record
}

// SummarizeAttendance keeps only validated records with a date inside
// [start, end].
func SummarizeAttendance(records []attendance.Record, start, end time.Time) Summary {
	start, end = dateOnly(start), dateOnly(end)
	summary := Summary{PresentDates: make(DateSet)}
	for _, rec := range records {
		if !rec.Validated {
			continue
		}
		d := dateOnly(rec.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		summary.PresentDates.Add(d)
		summary.TotalWorkedSeconds += rec.WorkedSeconds
		summary.TotalOvertimeSeconds += rec.OvertimeSeconds
		summary.Records = append(summary.Records, rec)
	}
	return summary
}

// ConflictDates are working days with neither attendance nor leave
// coverage. They are reported on the payslip, not treated as errors;
// the wage engine surfaces them through loss-of-pay instead.
func ConflictDates(working WorkingDayInfo, summary Summary, ledger Ledger) []time.Time {
	var conflicts []time.Time
	for d := range working.WorkingDates {
		if summary.PresentDates.Contains(d) {
			continue
		}
		if ledger.PaidDates.Contains(d) || ledger.UnpaidDates.Contains(d) {
			continue
		}
		conflicts = append(conflicts, d)
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Before(conflicts[j]) })
	return conflicts
}
