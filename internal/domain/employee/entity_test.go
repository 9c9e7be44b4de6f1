package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExperienceMonths(t *testing.T) {
	asOf := time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC)

	hire := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name string
		hire *time.Time
		want int
	}{
		{"no hire date", nil, 0},
		{"two full years", hire(2023, time.July, 1), 24},
		{"partial month not counted", hire(2025, time.June, 15), 1},
		{"day boundary", hire(2023, time.August, 1), 23},
		{"future hire date", hire(2026, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Employee{HireDate: tt.hire}
			assert.Equal(t, tt.want, e.ExperienceMonths(asOf))
		})
	}
}
