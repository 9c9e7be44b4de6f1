package postgresql

import (
	"context"
	"fmt"

	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, status, wage_type, wage, pay_frequency,
			   start_date, end_date, filing_status_id,
			   calculate_daily_leave_amount, deduction_for_one_leave_amount,
			   deduct_leave_from_basic_pay, created_at, updated_at
		FROM contracts
		WHERE employee_id = $1 AND status = 'active'
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&c.ID, &c.EmployeeID, &c.Status, &c.WageType, &c.Wage, &c.PayFrequency,
		&c.StartDate, &c.EndDate, &c.FilingStatusID,
		&c.CalculateDailyLeaveAmount, &c.DeductionForOneLeaveAmount,
		&c.DeductLeaveFromBasicPay, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.Contract{}, contract.ErrNoActiveContract
		}
		return contract.Contract{}, fmt.Errorf("failed to get active contract: %w", err)
	}
	return c, nil
}
