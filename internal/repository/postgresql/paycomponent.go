package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) paycomponent.CatalogRepository {
	return &catalogRepository{db: db}
}

// basisRecord is the JSONB wire form of a Basis variant.
type basisRecord struct {
	Name       string           `json:"name"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	ShiftID    *string          `json:"shift_id,omitempty"`
	WorkTypeID *string          `json:"work_type_id,omitempty"`
}

func encodeBasis(b paycomponent.Basis) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	rec := basisRecord{Name: b.Name()}
	switch v := b.(type) {
	case paycomponent.PercentOfBasicPay:
		rec.Rate = &v.Rate
	case paycomponent.PercentOfGrossPay:
		rec.Rate = &v.Rate
	case paycomponent.PercentOfTaxableGrossPay:
		rec.Rate = &v.Rate
	case paycomponent.PercentOfNetPay:
		rec.Rate = &v.Rate
	case paycomponent.OvertimeHourly:
		rec.Rate = &v.Rate
	case paycomponent.PerAttendance:
		rec.Amount = &v.Amount
	case paycomponent.PerShift:
		rec.Amount = &v.Amount
		rec.ShiftID = &v.ShiftID
	case paycomponent.PerWorkType:
		rec.Amount = &v.Amount
		rec.WorkTypeID = &v.WorkTypeID
	case paycomponent.PerChild:
		rec.Amount = &v.Amount
	default:
		return nil, paycomponent.ErrInvalidBasis
	}
	return json.Marshal(rec)
}

func decodeBasis(data []byte) (paycomponent.Basis, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rec basisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	switch rec.Name {
	case "basic_pay":
		return paycomponent.PercentOfBasicPay{Rate: deref(rec.Rate)}, nil
	case "gross_pay":
		return paycomponent.PercentOfGrossPay{Rate: deref(rec.Rate)}, nil
	case "taxable_gross_pay":
		return paycomponent.PercentOfTaxableGrossPay{Rate: deref(rec.Rate)}, nil
	case "net_pay":
		return paycomponent.PercentOfNetPay{Rate: deref(rec.Rate)}, nil
	case "overtime":
		return paycomponent.OvertimeHourly{Rate: deref(rec.Rate)}, nil
	case "attendance":
		return paycomponent.PerAttendance{Amount: deref(rec.Amount)}, nil
	case "shift":
		return paycomponent.PerShift{ShiftID: derefString(rec.ShiftID), Amount: deref(rec.Amount)}, nil
	case "work_type":
		return paycomponent.PerWorkType{WorkTypeID: derefString(rec.WorkTypeID), Amount: deref(rec.Amount)}, nil
	case "children":
		return paycomponent.PerChild{Amount: deref(rec.Amount)}, nil
	default:
		return nil, paycomponent.ErrInvalidBasis
	}
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const componentColumns = `
	id, title, kind, include_all_active, specific_employee_ids, excluded_employee_ids,
	conditions, is_fixed, amount, basis, has_max_limit, maximum_amount, one_time_date,
	is_taxable, is_pretax, is_tax, update_compensation, if_condition, is_active,
	created_at, updated_at
`

func (r *catalogRepository) Create(ctx context.Context, def paycomponent.Definition) (paycomponent.Definition, error) {
	q := GetQuerier(ctx, r.db)

	conditions, err := json.Marshal(def.Conditions)
	if err != nil {
		return paycomponent.Definition{}, fmt.Errorf("failed to encode conditions: %w", err)
	}
	basis, err := encodeBasis(def.Basis)
	if err != nil {
		return paycomponent.Definition{}, fmt.Errorf("failed to encode basis: %w", err)
	}
	var ifCondition []byte
	if def.IfCondition != nil {
		if ifCondition, err = json.Marshal(def.IfCondition); err != nil {
			return paycomponent.Definition{}, fmt.Errorf("failed to encode if-condition: %w", err)
		}
	}

	query := `
		INSERT INTO pay_components (
			title, kind, include_all_active, specific_employee_ids, excluded_employee_ids,
			conditions, is_fixed, amount, basis, has_max_limit, maximum_amount, one_time_date,
			is_taxable, is_pretax, is_tax, update_compensation, if_condition, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + componentColumns

	row := q.QueryRow(ctx, query,
		def.Title, def.Kind, def.IncludeAllActive, def.SpecificEmployeeIDs, def.ExcludedEmployeeIDs,
		conditions, def.IsFixed, def.Amount, basis, def.HasMaxLimit, def.MaximumAmount, def.OneTimeDate,
		def.IsTaxable, def.IsPretax, def.IsTax, def.UpdateCompensation, ifCondition, def.IsActive,
	)
	created, err := scanComponent(row)
	if err != nil {
		if strings.Contains(err.Error(), "uk_pay_component_title") {
			return paycomponent.Definition{}, paycomponent.ErrComponentNameExists
		}
		return paycomponent.Definition{}, fmt.Errorf("failed to create pay component: %w", err)
	}
	return created, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (paycomponent.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM pay_components WHERE id = $1`

	def, err := scanComponent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return paycomponent.Definition{}, paycomponent.ErrComponentNotFound
		}
		return paycomponent.Definition{}, fmt.Errorf("failed to get pay component: %w", err)
	}
	return def, nil
}

func (r *catalogRepository) ListActive(ctx context.Context, kind paycomponent.Kind) ([]paycomponent.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM pay_components WHERE is_active = true AND kind = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay components: %w", err)
	}
	defer rows.Close()

	var defs []paycomponent.Definition
	for rows.Next() {
		def, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay component: %w", err)
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

func (r *catalogRepository) Update(ctx context.Context, def paycomponent.Definition) (paycomponent.Definition, error) {
	q := GetQuerier(ctx, r.db)

	conditions, err := json.Marshal(def.Conditions)
	if err != nil {
		return paycomponent.Definition{}, fmt.Errorf("failed to encode conditions: %w", err)
	}
	basis, err := encodeBasis(def.Basis)
	if err != nil {
		return paycomponent.Definition{}, fmt.Errorf("failed to encode basis: %w", err)
	}
	var ifCondition []byte
	if def.IfCondition != nil {
		if ifCondition, err = json.Marshal(def.IfCondition); err != nil {
			return paycomponent.Definition{}, fmt.Errorf("failed to encode if-condition: %w", err)
		}
	}

	query := `
		UPDATE pay_components SET
			title = $2, include_all_active = $3, specific_employee_ids = $4,
			excluded_employee_ids = $5, conditions = $6, is_fixed = $7, amount = $8,
			basis = $9, has_max_limit = $10, maximum_amount = $11, one_time_date = $12,
			is_taxable = $13, is_pretax = $14, is_tax = $15, update_compensation = $16,
			if_condition = $17, is_active = $18, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + componentColumns

	row := q.QueryRow(ctx, query,
		def.ID, def.Title, def.IncludeAllActive, def.SpecificEmployeeIDs,
		def.ExcludedEmployeeIDs, conditions, def.IsFixed, def.Amount,
		basis, def.HasMaxLimit, def.MaximumAmount, def.OneTimeDate,
		def.IsTaxable, def.IsPretax, def.IsTax, def.UpdateCompensation,
		ifCondition, def.IsActive,
	)
	updated, err := scanComponent(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return paycomponent.Definition{}, paycomponent.ErrComponentNotFound
		}
		return paycomponent.Definition{}, fmt.Errorf("failed to update pay component: %w", err)
	}
	return updated, nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pay_components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pay component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return paycomponent.ErrComponentNotFound
	}
	return nil
}

func scanComponent(row pgx.Row) (paycomponent.Definition, error) {
	var (
		def         paycomponent.Definition
		conditions  []byte
		basis       []byte
		ifCondition []byte
	)
	err := row.Scan(
		&def.ID, &def.Title, &def.Kind, &def.IncludeAllActive,
		&def.SpecificEmployeeIDs, &def.ExcludedEmployeeIDs,
		&conditions, &def.IsFixed, &def.Amount, &basis,
		&def.HasMaxLimit, &def.MaximumAmount, &def.OneTimeDate,
		&def.IsTaxable, &def.IsPretax, &def.IsTax, &def.UpdateCompensation,
		&ifCondition, &def.IsActive, &def.CreatedAt, &def.UpdatedAt,
	)
	if err != nil {
		return paycomponent.Definition{}, err
	}
	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &def.Conditions); err != nil {
			return paycomponent.Definition{}, fmt.Errorf("failed to decode conditions: %w", err)
		}
	}
	if def.Basis, err = decodeBasis(basis); err != nil {
		return paycomponent.Definition{}, fmt.Errorf("failed to decode basis: %w", err)
	}
	if len(ifCondition) > 0 {
		var ic paycomponent.IfCondition
		if err := json.Unmarshal(ifCondition, &ic); err != nil {
			return paycomponent.Definition{}, fmt.Errorf("failed to decode if-condition: %w", err)
		}
		def.IfCondition = &ic
	}
	return def, nil
}
