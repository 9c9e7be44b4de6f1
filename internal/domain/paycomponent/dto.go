package paycomponent

import (
	"strconv"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ConditionDTO struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

type IfConditionDTO struct {
	Basis      string           `json:"basis"`
	Operator   string           `json:"operator"`
	Value      *decimal.Decimal `json:"value,omitempty"`
	RangeStart *decimal.Decimal `json:"range_start,omitempty"`
	RangeEnd   *decimal.Decimal `json:"range_end,omitempty"`
}

type CreatePayComponentRequest struct {
	Title               string           `json:"title"`
	Kind                string           `json:"kind"` // "allowance" or "deduction"
	IncludeAllActive    bool             `json:"include_all_active"`
	SpecificEmployeeIDs []string         `json:"specific_employee_ids,omitempty"`
	ExcludedEmployeeIDs []string         `json:"excluded_employee_ids,omitempty"`
	Conditions          []ConditionDTO   `json:"conditions,omitempty"`
	IsFixed             bool             `json:"is_fixed"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	BasedOn             *string          `json:"based_on,omitempty"`
	Rate                *decimal.Decimal `json:"rate,omitempty"`
	PerUnitAmount       *decimal.Decimal `json:"per_unit_amount,omitempty"`
	ShiftID             *string          `json:"shift_id,omitempty"`
	WorkTypeID          *string          `json:"work_type_id,omitempty"`
	HasMaxLimit         bool             `json:"has_max_limit"`
	MaximumAmount       *decimal.Decimal `json:"maximum_amount,omitempty"`
	OneTimeDate         *string          `json:"one_time_date,omitempty"` // YYYY-MM-DD
	IsTaxable           *bool            `json:"is_taxable,omitempty"`
	IsPretax            bool             `json:"is_pretax"`
	IsTax               bool             `json:"is_tax"`
	UpdateCompensation  *string          `json:"update_compensation,omitempty"`
	IfCondition         *IfConditionDTO  `json:"if_condition,omitempty"`
}

var validOperators = map[string]bool{
	string(OpEqual): true, string(OpNotEqual): true,
	string(OpLessThan): true, string(OpGreaterThan): true,
	string(OpLessEqual): true, string(OpGreaterEqual): true,
	string(OpContains): true,
}

var validFields = map[string]bool{
	string(FieldGender): true, string(FieldMaritalStatus): true,
	string(FieldChildren): true, string(FieldExperience): true,
	string(FieldCountry): true, string(FieldState): true,
	string(FieldDepartment): true, string(FieldJobPosition): true,
	string(FieldPayFrequency): true, string(FieldWageType): true,
}

func (r *CreatePayComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Kind != string(KindAllowance) && r.Kind != string(KindDeduction) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'allowance' or 'deduction'"})
	}
	if !r.IncludeAllActive && len(r.SpecificEmployeeIDs) == 0 && len(r.Conditions) == 0 {
		errs = append(errs, validator.ValidationError{Field: "include_all_active", Message: "component must target someone"})
	}
	for i, c := range r.Conditions {
		if !validFields[c.Field] {
			errs = append(errs, validator.ValidationError{Field: "conditions", Message: "unknown field at index " + strconv.Itoa(i)})
		}
		if !validOperators[c.Operator] {
			errs = append(errs, validator.ValidationError{Field: "conditions", Message: "unknown operator at index " + strconv.Itoa(i)})
		}
	}
	if r.IsFixed {
		if r.Amount == nil {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required for fixed components"})
		} else if r.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
		}
	} else {
		if r.BasedOn == nil {
			errs = append(errs, validator.ValidationError{Field: "based_on", Message: "is required for formula components"})
		} else if _, err := buildBasis(*r.BasedOn, r.Rate, r.PerUnitAmount, r.ShiftID, r.WorkTypeID); err != nil {
			errs = append(errs, validator.ValidationError{Field: "based_on", Message: err.Error()})
		}
	}
	if r.HasMaxLimit {
		if r.MaximumAmount == nil {
			errs = append(errs, validator.ValidationError{Field: "maximum_amount", Message: "is required when has_max_limit is set"})
		} else if r.MaximumAmount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "maximum_amount", Message: "must be non-negative"})
		}
	}
	if r.OneTimeDate != nil && !validator.IsValidDate(*r.OneTimeDate) {
		errs = append(errs, validator.ValidationError{Field: "one_time_date", Message: "must be YYYY-MM-DD"})
	}
	if r.UpdateCompensation != nil {
		switch CompensationHead(*r.UpdateCompensation) {
		case CompensationBasicPay, CompensationGrossPay, CompensationNetPay:
		default:
			errs = append(errs, validator.ValidationError{Field: "update_compensation", Message: "must be basic_pay, gross_pay or net_pay"})
		}
	}
	if r.IfCondition != nil {
		if r.IfCondition.Basis != string(IfBasisBasicPay) && r.IfCondition.Basis != string(IfBasisGrossPay) {
			errs = append(errs, validator.ValidationError{Field: "if_condition.basis", Message: "must be basic_pay or gross_pay"})
		}
		if r.IfCondition.Operator == string(OpRange) {
			if r.IfCondition.RangeStart == nil || r.IfCondition.RangeEnd == nil {
				errs = append(errs, validator.ValidationError{Field: "if_condition", Message: "range requires range_start and range_end"})
			}
		} else if !validOperators[r.IfCondition.Operator] || r.IfCondition.Operator == string(OpContains) {
			errs = append(errs, validator.ValidationError{Field: "if_condition.operator", Message: "unsupported operator"})
		} else if r.IfCondition.Value == nil {
			errs = append(errs, validator.ValidationError{Field: "if_condition.value", Message: "is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToDefinition converts a validated request into a Definition.
func (r *CreatePayComponentRequest) ToDefinition() (Definition, error) {
	def := Definition{
		Title:               r.Title,
		Kind:                Kind(r.Kind),
		IncludeAllActive:    r.IncludeAllActive,
		SpecificEmployeeIDs: r.SpecificEmployeeIDs,
		ExcludedEmployeeIDs: r.ExcludedEmployeeIDs,
		IsFixed:             r.IsFixed,
		HasMaxLimit:         r.HasMaxLimit,
		IsPretax:            r.IsPretax,
		IsTax:               r.IsTax,
		IsActive:            true,
	}
	for _, c := range r.Conditions {
		def.Conditions = append(def.Conditions, Condition{
			Field:    ConditionField(c.Field),
			Operator: Operator(c.Operator),
			Value:    c.Value,
		})
	}
	if r.IsFixed {
		def.Amount = *r.Amount
	} else {
		basis, err := buildBasis(*r.BasedOn, r.Rate, r.PerUnitAmount, r.ShiftID, r.WorkTypeID)
		if err != nil {
			return Definition{}, err
		}
		def.Basis = basis
	}
	if r.HasMaxLimit {
		def.MaximumAmount = *r.MaximumAmount
	}
	if r.OneTimeDate != nil {
		parsed, err := time.Parse("2006-01-02", *r.OneTimeDate)
		if err != nil {
			return Definition{}, err
		}
		def.OneTimeDate = &parsed
	}
	if r.IsTaxable != nil {
		def.IsTaxable = *r.IsTaxable
	}
	if r.UpdateCompensation != nil {
		def.UpdateCompensation = CompensationHead(*r.UpdateCompensation)
	}
	if r.IfCondition != nil {
		ic := IfCondition{
			Basis:    IfBasis(r.IfCondition.Basis),
			Operator: Operator(r.IfCondition.Operator),
		}
		if r.IfCondition.Value != nil {
			ic.Value = *r.IfCondition.Value
		}
		if r.IfCondition.RangeStart != nil {
			ic.RangeStart = *r.IfCondition.RangeStart
		}
		if r.IfCondition.RangeEnd != nil {
			ic.RangeEnd = *r.IfCondition.RangeEnd
		}
		def.IfCondition = &ic
	}
	return def, nil
}

func buildBasis(basedOn string, rate, perUnit *decimal.Decimal, shiftID, workTypeID *string) (Basis, error) {
	switch basedOn {
	case "basic_pay", "gross_pay", "taxable_gross_pay", "net_pay", "overtime":
		if rate == nil {
			return nil, ErrInvalidBasis
		}
		switch basedOn {
		case "basic_pay":
			return PercentOfBasicPay{Rate: *rate}, nil
		case "gross_pay":
			return PercentOfGrossPay{Rate: *rate}, nil
		case "taxable_gross_pay":
			return PercentOfTaxableGrossPay{Rate: *rate}, nil
		case "net_pay":
			return PercentOfNetPay{Rate: *rate}, nil
		default:
			return OvertimeHourly{Rate: *rate}, nil
		}
	case "attendance":
		if perUnit == nil {
			return nil, ErrInvalidBasis
		}
		return PerAttendance{Amount: *perUnit}, nil
	case "shift":
		if perUnit == nil || shiftID == nil {
			return nil, ErrInvalidBasis
		}
		return PerShift{ShiftID: *shiftID, Amount: *perUnit}, nil
	case "work_type":
		if perUnit == nil || workTypeID == nil {
			return nil, ErrInvalidBasis
		}
		return PerWorkType{WorkTypeID: *workTypeID, Amount: *perUnit}, nil
	case "children":
		if perUnit == nil {
			return nil, ErrInvalidBasis
		}
		return PerChild{Amount: *perUnit}, nil
	default:
		return nil, ErrInvalidBasis
	}
}

type PayComponentResponse struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Kind               string           `json:"kind"`
	IncludeAllActive   bool             `json:"include_all_active"`
	IsFixed            bool             `json:"is_fixed"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	BasedOn            *string          `json:"based_on,omitempty"`
	HasMaxLimit        bool             `json:"has_max_limit"`
	MaximumAmount      *decimal.Decimal `json:"maximum_amount,omitempty"`
	OneTimeDate        *string          `json:"one_time_date,omitempty"`
	IsTaxable          bool             `json:"is_taxable"`
	IsPretax           bool             `json:"is_pretax"`
	IsTax              bool             `json:"is_tax"`
	UpdateCompensation string           `json:"update_compensation,omitempty"`
	IsActive           bool             `json:"is_active"`
}

func ToResponse(d Definition) PayComponentResponse {
	resp := PayComponentResponse{
		ID:                 d.ID,
		Title:              d.Title,
		Kind:               string(d.Kind),
		IncludeAllActive:   d.IncludeAllActive,
		IsFixed:            d.IsFixed,
		HasMaxLimit:        d.HasMaxLimit,
		IsTaxable:          d.IsTaxable,
		IsPretax:           d.IsPretax,
		IsTax:              d.IsTax,
		UpdateCompensation: string(d.UpdateCompensation),
		IsActive:           d.IsActive,
	}
	if d.IsFixed {
		amount := d.Amount
		resp.Amount = &amount
	} else if d.Basis != nil {
		name := d.Basis.Name()
		resp.BasedOn = &name
	}
	if d.HasMaxLimit {
		max := d.MaximumAmount
		resp.MaximumAmount = &max
	}
	if d.OneTimeDate != nil {
		str := d.OneTimeDate.Format("2006-01-02")
		resp.OneTimeDate = &str
	}
	return resp
}
