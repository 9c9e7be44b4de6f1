package payslip

import (
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/domain/workcalendar"
)

// DateSet is a set of midnight-UTC dates.
type DateSet map[time.Time]struct{}

func (s DateSet) Add(d time.Time)           { s[dateOnly(d)] = struct{}{} }
func (s DateSet) Contains(d time.Time) bool { _, ok := s[dateOnly(d)]; return ok }

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WorkingDayInfo is the result of counting working days over a range.
type WorkingDayInfo struct {
	Total         int
	WorkingDates  DateSet
	ExcludedDates DateSet
}

// Calendar resolves holidays and recurring company leave into
// working-day sets. It is an immutable snapshot; build a new one to
// pick up rule changes.
type Calendar struct {
	holidays []workcalendar.Holiday
	rules    []workcalendar.CompanyLeaveRule
}

func NewCalendar(holidays []workcalendar.Holiday, rules []workcalendar.CompanyLeaveRule) *Calendar {
	return &Calendar{holidays: holidays, rules: rules}
}

// HolidayDates unions all holiday spans intersecting [start, end].
func (c *Calendar) HolidayDates(start, end time.Time) DateSet {
	start, end = dateOnly(start), dateOnly(end)
	dates := make(DateSet)
	for _, h := range c.holidays {
		spans := [][2]time.Time{holidaySpan(h, 0)}
		if h.Recurring {
			spans = spans[:0]
			for year := start.Year(); year <= end.Year(); year++ {
				spans = append(spans, holidaySpan(h, year))
			}
		}
		for _, span := range spans {
			for d := span[0]; !d.After(span[1]); d = d.AddDate(0, 0, 1) {
				if !d.Before(start) && !d.After(end) {
					dates.Add(d)
				}
			}
		}
	}
	return dates
}

// holidaySpan returns the inclusive span of h, shifted to year when
// year is non-zero (recurring holidays keep their month/day).
func holidaySpan(h workcalendar.Holiday, year int) [2]time.Time {
	hs := dateOnly(h.StartDate)
	he := hs
	if h.EndDate != nil {
		he = dateOnly(*h.EndDate)
	}
	if year != 0 {
		shift := year - hs.Year()
		hs = hs.AddDate(shift, 0, 0)
		he = he.AddDate(shift, 0, 0)
	}
	return [2]time.Time{hs, he}
}

// CompanyLeaveDates expands the recurring company leave rules over one
// calendar year.
//
// The two rule forms intentionally disagree on the first day of the
// week: Nth-occurrence rules enumerate Sunday-started weeks while the
// every-week form follows the ISO Monday week. Unifying them shifts
// which dates near month boundaries are excluded, which changes
// working-day counts and therefore pay. Do not "fix" this without a
// sign-off from payroll.
func (c *Calendar) CompanyLeaveDates(year int) DateSet {
	dates := make(DateSet)
	for _, rule := range c.rules {
		if rule.BasedOnWeek == nil {
			// Every week: every date in the year with the weekday.
			for d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
				if d.Weekday() == rule.Weekday {
					dates.Add(d)
				}
			}
			continue
		}
		for month := time.January; month <= time.December; month++ {
			if d, ok := nthWeekdayOfMonth(year, month, *rule.BasedOnWeek, rule.Weekday); ok {
				dates.Add(d)
			}
		}
	}
	return dates
}

// nthWeekdayOfMonth finds the weekday inside week index n of the
// month, where week 0 runs from the 1st to the first Saturday and
// every following week starts on Sunday.
func nthWeekdayOfMonth(year int, month time.Month, n int, weekday time.Weekday) (time.Time, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	week := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Day() > 1 && d.Weekday() == time.Sunday {
			week++
		}
		if week > n {
			break
		}
		if week == n && d.Weekday() == weekday {
			return d, true
		}
	}
	return time.Time{}, false
}

// WorkingDays counts calendar days in [start, end] minus holidays and
// company leave dates.
func (c *Calendar) WorkingDays(start, end time.Time) WorkingDayInfo {
	start, end = dateOnly(start), dateOnly(end)
	excluded := c.HolidayDates(start, end)
	for year := start.Year(); year <= end.Year(); year++ {
		for d := range c.CompanyLeaveDates(year) {
			if !d.Before(start) && !d.After(end) {
				excluded.Add(d)
			}
		}
	}

	info := WorkingDayInfo{
		WorkingDates:  make(DateSet),
		ExcludedDates: excluded,
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if excluded.Contains(d) {
			continue
		}
		info.WorkingDates.Add(d)
		info.Total++
	}
	return info
}

// MonthSegments splits [start, end] into calendar-month segments with
// working-day counts for the segment, the whole month, and the whole
// period. PerDayWage is filled in by the wage engine.
func (c *Calendar) MonthSegments(start, end time.Time) []payslip.MonthSegment {
	start, end = dateOnly(start), dateOnly(end)
	periodDays := c.WorkingDays(start, end).Total

	var segments []payslip.MonthSegment
	for cursor := start; !cursor.After(end); {
		monthStart := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)

		segmentEnd := monthEnd
		if segmentEnd.After(end) {
			segmentEnd = end
		}

		segments = append(segments, payslip.MonthSegment{
			Year:                 cursor.Year(),
			Month:                cursor.Month(),
			DaysInMonth:          monthEnd.Day(),
			WorkingDaysInMonth:   c.WorkingDays(monthStart, monthEnd).Total,
			WorkingDaysInSegment: c.WorkingDays(cursor, segmentEnd).Total,
			WorkingDaysInPeriod:  periodDays,
		})

		cursor = monthEnd.AddDate(0, 0, 1)
	}
	return segments
}
