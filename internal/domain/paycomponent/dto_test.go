package paycomponent

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("bad decimal literal: " + s)
	}
	return &d
}

func strPtr(s string) *string { return &s }

func validRequest() CreatePayComponentRequest {
	return CreatePayComponentRequest{
		Title:            "Transport Allowance",
		Kind:             "allowance",
		IncludeAllActive: true,
		IsFixed:          true,
		Amount:           decPtr("500"),
	}
}

func TestCreatePayComponentRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePayComponentRequest)
		field  string
	}{
		{
			name:   "missing title",
			mutate: func(r *CreatePayComponentRequest) { r.Title = " " },
			field:  "title",
		},
		{
			name:   "bad kind",
			mutate: func(r *CreatePayComponentRequest) { r.Kind = "bonus" },
			field:  "kind",
		},
		{
			name: "no targeting at all",
			mutate: func(r *CreatePayComponentRequest) {
				r.IncludeAllActive = false
			},
			field: "include_all_active",
		},
		{
			name: "fixed without amount",
			mutate: func(r *CreatePayComponentRequest) {
				r.Amount = nil
			},
			field: "amount",
		},
		{
			name: "formula without based_on",
			mutate: func(r *CreatePayComponentRequest) {
				r.IsFixed = false
				r.Amount = nil
			},
			field: "based_on",
		},
		{
			name: "max limit without maximum",
			mutate: func(r *CreatePayComponentRequest) {
				r.HasMaxLimit = true
			},
			field: "maximum_amount",
		},
		{
			name: "unknown condition field",
			mutate: func(r *CreatePayComponentRequest) {
				r.Conditions = []ConditionDTO{{Field: "age", Operator: "eq", Value: "30"}}
			},
			field: "conditions",
		},
		{
			name: "range if-condition without bounds",
			mutate: func(r *CreatePayComponentRequest) {
				r.IfCondition = &IfConditionDTO{Basis: "basic_pay", Operator: "range"}
			},
			field: "if_condition",
		},
		{
			name: "contains not allowed on if-condition",
			mutate: func(r *CreatePayComponentRequest) {
				r.IfCondition = &IfConditionDTO{Basis: "basic_pay", Operator: "contains", Value: decPtr("10")}
			},
			field: "if_condition.operator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestToDefinition_BuildsBasisVariants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreatePayComponentRequest)
		want    string
		wantErr bool
	}{
		{
			name: "percent of basic pay",
			mutate: func(r *CreatePayComponentRequest) {
				r.BasedOn = strPtr("basic_pay")
				r.Rate = decPtr("10")
			},
			want: "basic_pay",
		},
		{
			name: "overtime hourly",
			mutate: func(r *CreatePayComponentRequest) {
				r.BasedOn = strPtr("overtime")
				r.Rate = decPtr("1.5")
			},
			want: "overtime",
		},
		{
			name: "per shift",
			mutate: func(r *CreatePayComponentRequest) {
				r.BasedOn = strPtr("shift")
				r.PerUnitAmount = decPtr("40")
				r.ShiftID = strPtr("night")
			},
			want: "shift",
		},
		{
			name: "per shift without shift id",
			mutate: func(r *CreatePayComponentRequest) {
				r.BasedOn = strPtr("shift")
				r.PerUnitAmount = decPtr("40")
			},
			wantErr: true,
		},
		{
			name: "percent without rate",
			mutate: func(r *CreatePayComponentRequest) {
				r.BasedOn = strPtr("gross_pay")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.IsFixed = false
			req.Amount = nil
			tt.mutate(&req)

			basis, err := buildBasis(derefOr(req.BasedOn), req.Rate, req.PerUnitAmount, req.ShiftID, req.WorkTypeID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBasis)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, basis.Name())
		})
	}
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TestToDefinition_RoundTripsFlags(t *testing.T) {
	req := validRequest()
	req.Kind = "deduction"
	req.IsPretax = true
	req.UpdateCompensation = strPtr("basic_pay")
	req.OneTimeDate = strPtr("2025-07-15")

	def, err := req.ToDefinition()
	require.NoError(t, err)

	assert.Equal(t, KindDeduction, def.Kind)
	assert.True(t, def.IsPretax)
	assert.Equal(t, CompensationBasicPay, def.UpdateCompensation)
	require.NotNil(t, def.OneTimeDate)
	assert.Equal(t, "2025-07-15", def.OneTimeDate.Format("2006-01-02"))
	assert.True(t, def.IsActive)
}
