package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

// lineItems is the JSONB form of the itemized buckets.
type payslipDetail struct {
	Allowances          []payslip.LineItem      `json:"allowances,omitempty"`
	BasicPayAdjustments []payslip.LineItem      `json:"basic_pay_adjustments,omitempty"`
	GrossPayAdjustments []payslip.LineItem      `json:"gross_pay_adjustments,omitempty"`
	NetPayAdjustments   []payslip.LineItem      `json:"net_pay_adjustments,omitempty"`
	PretaxDeductions    []payslip.LineItem      `json:"pretax_deductions,omitempty"`
	PosttaxDeductions   []payslip.LineItem      `json:"posttax_deductions,omitempty"`
	TaxDeductions       []payslip.LineItem      `json:"tax_deductions,omitempty"`
	NetPayDeductions    []payslip.LineItem      `json:"net_pay_deductions,omitempty"`
	MonthBreakdown      []payslip.MonthSegment  `json:"month_breakdown,omitempty"`
	ConflictDates       []time.Time             `json:"conflict_dates,omitempty"`
	Warnings            []string                `json:"warnings,omitempty"`
}

const payslipColumns = `
	id, employee_id, contract_id, period_start, period_end,
	contract_wage, basic_pay, gross_pay, taxable_gross_pay,
	loss_of_pay, bracket_tax, total_deductions, net_pay,
	detail, status, created_at
`

func (r *payslipRepository) Create(ctx context.Context, result payslip.Result) (payslip.Result, error) {
	q := GetQuerier(ctx, r.db)

	detail, err := json.Marshal(payslipDetail{
		Allowances:          result.Allowances,
		BasicPayAdjustments: result.BasicPayAdjustments,
		GrossPayAdjustments: result.GrossPayAdjustments,
		NetPayAdjustments:   result.NetPayAdjustments,
		PretaxDeductions:    result.PretaxDeductions,
		PosttaxDeductions:   result.PosttaxDeductions,
		TaxDeductions:       result.TaxDeductions,
		NetPayDeductions:    result.NetPayDeductions,
		MonthBreakdown:      result.MonthBreakdown,
		ConflictDates:       result.ConflictDates,
		Warnings:            result.Warnings,
	})
	if err != nil {
		return payslip.Result{}, fmt.Errorf("failed to encode payslip detail: %w", err)
	}

	query := `
		INSERT INTO payslips (
			id, employee_id, contract_id, period_start, period_end,
			contract_wage, basic_pay, gross_pay, taxable_gross_pay,
			loss_of_pay, bracket_tax, total_deductions, net_pay,
			detail, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + payslipColumns

	row := q.QueryRow(ctx, query,
		result.ID, result.EmployeeID, result.ContractID, result.PeriodStart, result.PeriodEnd,
		result.ContractWage, result.BasicPay, result.GrossPay, result.TaxableGrossPay,
		result.LossOfPay, result.BracketTax, result.TotalDeductions, result.NetPay,
		detail, result.Status,
	)
	created, err := scanPayslip(row)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payslip_employee_period") {
			return payslip.Result{}, payslip.ErrPayslipExists
		}
		return payslip.Result{}, fmt.Errorf("failed to create payslip: %w", err)
	}
	return created, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	result, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Result{}, payslip.ErrPayslipNotFound
		}
		return payslip.Result{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return result, nil
}

func (r *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, period payslip.Period) (payslip.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE employee_id = $1 AND period_start = $2 AND period_end = $3`

	result, err := scanPayslip(q.QueryRow(ctx, query, employeeID, period.Start, period.End))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Result{}, payslip.ErrPayslipNotFound
		}
		return payslip.Result{}, fmt.Errorf("failed to get payslip by period: %w", err)
	}
	return result, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.Filter) ([]payslip.Result, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.PeriodStart != nil {
		where = append(where, fmt.Sprintf("period_end >= $%d", argPos))
		args = append(args, *filter.PeriodStart)
		argPos++
	}
	if filter.PeriodEnd != nil {
		where = append(where, fmt.Sprintf("period_start <= $%d", argPos))
		args = append(args, *filter.PeriodEnd)
		argPos++
	}
	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payslips WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s FROM payslips WHERE %s ORDER BY period_start DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		payslipColumns, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var results []payslip.Result
	for rows.Next() {
		result, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		results = append(results, result)
	}
	return results, totalCount, rows.Err()
}

func (r *payslipRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}
	return nil
}

func scanPayslip(row pgx.Row) (payslip.Result, error) {
	var (
		result payslip.Result
		detail []byte
	)
	err := row.Scan(
		&result.ID, &result.EmployeeID, &result.ContractID, &result.PeriodStart, &result.PeriodEnd,
		&result.ContractWage, &result.BasicPay, &result.GrossPay, &result.TaxableGrossPay,
		&result.LossOfPay, &result.BracketTax, &result.TotalDeductions, &result.NetPay,
		&detail, &result.Status, &result.CreatedAt,
	)
	if err != nil {
		return payslip.Result{}, err
	}
	if len(detail) > 0 {
		var d payslipDetail
		if err := json.Unmarshal(detail, &d); err != nil {
			return payslip.Result{}, fmt.Errorf("failed to decode payslip detail: %w", err)
		}
		result.Allowances = d.Allowances
		result.BasicPayAdjustments = d.BasicPayAdjustments
		result.GrossPayAdjustments = d.GrossPayAdjustments
		result.NetPayAdjustments = d.NetPayAdjustments
		result.PretaxDeductions = d.PretaxDeductions
		result.PosttaxDeductions = d.PosttaxDeductions
		result.TaxDeductions = d.TaxDeductions
		result.NetPayDeductions = d.NetPayDeductions
		result.MonthBreakdown = d.MonthBreakdown
		result.ConflictDates = d.ConflictDates
		result.Warnings = d.Warnings
	}
	return result, nil
}
