package payslip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hriscore/payroll-engine-go/internal/pkg/validator"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	now := day(2025, time.August, 15)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"valid month", day(2025, time.July, 1), day(2025, time.July, 31), false},
		{"single day", day(2025, time.August, 15), day(2025, time.August, 15), false},
		{"end before start", day(2025, time.July, 31), day(2025, time.July, 1), true},
		{"end in the future", day(2025, time.August, 1), day(2025, time.August, 16), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := NewPeriod(tt.start, tt.end, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, period.Start)
			assert.Equal(t, tt.end, period.End)
		})
	}
}

func TestNewPeriod_NormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	start := time.Date(2025, time.July, 1, 9, 30, 0, 0, loc)
	end := time.Date(2025, time.July, 31, 17, 0, 0, 0, loc)

	period, err := NewPeriod(start, end, day(2025, time.August, 1))
	require.NoError(t, err)

	assert.Equal(t, day(2025, time.July, 1), period.Start)
	assert.Equal(t, day(2025, time.July, 31), period.End)
}

func TestGeneratePayslipsRequest_Validate(t *testing.T) {
	req := GeneratePayslipsRequest{PeriodStart: "2025-07-01", PeriodEnd: "2025-07-31"}
	assert.NoError(t, req.Validate())

	req = GeneratePayslipsRequest{PeriodStart: "01-07-2025", PeriodEnd: ""}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}
