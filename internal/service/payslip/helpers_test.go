package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("bad decimal literal: " + s)
	}
	return d
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
