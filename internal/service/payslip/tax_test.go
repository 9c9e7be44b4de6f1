package payslip

import (
	"testing"

	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bracket(min string, max string, rate string) tax.Bracket {
	b := tax.Bracket{MinIncome: dec(min), Rate: dec(rate)}
	if max != "" {
		m := dec(max)
		b.MaxIncome = &m
	}
	return b
}

func TestComputeBracketTax_ProgressiveWalk(t *testing.T) {
	brackets := []tax.Bracket{
		bracket("0", "1000", "0.1"),
		bracket("1000", "", "0.2"),
	}

	// A full non-leap year so annualization is the identity.
	result, err := ComputeBracketTax(brackets, dec("1500"), 365, 2025)
	require.NoError(t, err)

	// 1000 * 10% + 500 * 20%.
	assert.True(t, result.Equal(dec("200")), "got %s", result)
}

func TestComputeBracketTax_BelowFirstBracketIsZero(t *testing.T) {
	brackets := []tax.Bracket{
		bracket("5000", "", "0.3"),
	}

	result, err := ComputeBracketTax(brackets, dec("1000"), 365, 2025)
	require.NoError(t, err)
	assert.True(t, result.IsZero(), "got %s", result)
}

func TestComputeBracketTax_DeAnnualizesToPeriod(t *testing.T) {
	brackets := []tax.Bracket{
		bracket("0", "1000", "0.1"),
		bracket("1000", "", "0.2"),
	}

	// 1500 over 30 days annualizes to 18250: tax 100 + 3450, scaled
	// back to the period.
	result, err := ComputeBracketTax(brackets, dec("1500"), 30, 2025)
	require.NoError(t, err)
	assert.Equal(t, "291.37", result.Round(2).String())
}

func TestComputeBracketTax_Monotonic(t *testing.T) {
	brackets := []tax.Bracket{
		bracket("0", "1000", "0.1"),
		bracket("1000", "3000", "0.2"),
		bracket("3000", "", "0.35"),
	}

	prev := decimal.Zero
	for _, income := range []string{"500", "1000", "2500", "3000", "9000"} {
		result, err := ComputeBracketTax(brackets, dec(income), 365, 2025)
		require.NoError(t, err)
		assert.True(t, result.GreaterThanOrEqual(prev), "tax regressed at income %s", income)
		prev = result
	}
}

func TestComputeBracketTax_EmptyBrackets(t *testing.T) {
	result, err := ComputeBracketTax(nil, dec("1500"), 30, 2025)
	require.NoError(t, err)
	assert.True(t, result.IsZero())
}

func TestValidateBrackets(t *testing.T) {
	tests := []struct {
		name     string
		brackets []tax.Bracket
		wantErr  bool
	}{
		{
			name: "contiguous table",
			brackets: []tax.Bracket{
				bracket("0", "1000", "0.1"),
				bracket("1000", "3000", "0.2"),
				bracket("3000", "", "0.3"),
			},
		},
		{
			name: "gap between brackets",
			brackets: []tax.Bracket{
				bracket("0", "1000", "0.1"),
				bracket("2000", "", "0.2"),
			},
			wantErr: true,
		},
		{
			name: "overlap between brackets",
			brackets: []tax.Bracket{
				bracket("0", "1500", "0.1"),
				bracket("1000", "", "0.2"),
			},
			wantErr: true,
		},
		{
			name: "unbounded bracket not last",
			brackets: []tax.Bracket{
				bracket("0", "", "0.1"),
				bracket("1000", "2000", "0.2"),
			},
			wantErr: true,
		},
		{
			name: "empty max below min",
			brackets: []tax.Bracket{
				bracket("1000", "500", "0.1"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tax.ValidateBrackets(tt.brackets)
			if tt.wantErr {
				assert.ErrorIs(t, err, tax.ErrTaxBracketGap)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
