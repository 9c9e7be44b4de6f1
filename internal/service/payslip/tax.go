package payslip

import (
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

func daysInYear(year int) int {
	if time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}

// ComputeBracketTax annualizes the period income, walks the
// progressive brackets, and de-annualizes the resulting tax back to
// the period.
func ComputeBracketTax(brackets []tax.Bracket, income decimal.Decimal, periodDays int, periodYear int) (decimal.Decimal, error) {
	if len(brackets) == 0 || periodDays <= 0 {
		return decimal.Zero, nil
	}
	if err := tax.ValidateBrackets(brackets); err != nil {
		return decimal.Zero, err
	}

	yearDays := decimal.NewFromInt(int64(daysInYear(periodYear)))
	days := decimal.NewFromInt(int64(periodDays))
	yearlyIncome := income.Div(days).Mul(yearDays)

	if yearlyIncome.LessThan(brackets[0].MinIncome) {
		return decimal.Zero, nil
	}

	yearlyTax := decimal.Zero
	for _, b := range brackets {
		if yearlyIncome.LessThanOrEqual(b.MinIncome) {
			break
		}
		upper := yearlyIncome
		if b.MaxIncome != nil && b.MaxIncome.LessThan(upper) {
			upper = *b.MaxIncome
		}
		portion := upper.Sub(b.MinIncome)
		if portion.IsPositive() {
			yearlyTax = yearlyTax.Add(portion.Mul(b.Rate))
		}
	}

	return yearlyTax.Div(yearDays).Mul(days), nil
}
