package postgresql

import (
	"context"
	"fmt"

	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taxRepository struct {
	db *database.DB
}

func NewTaxRepository(db *database.DB) tax.TaxRepository {
	return &taxRepository{db: db}
}

func (r *taxRepository) GetFilingStatusByID(ctx context.Context, id string) (tax.FilingStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, created_at, updated_at FROM filing_statuses WHERE id = $1`

	var fs tax.FilingStatus
	err := q.QueryRow(ctx, query, id).Scan(&fs.ID, &fs.Name, &fs.IsActive, &fs.CreatedAt, &fs.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tax.FilingStatus{}, tax.ErrFilingStatusNotFound
		}
		return tax.FilingStatus{}, fmt.Errorf("failed to get filing status: %w", err)
	}
	return fs, nil
}

func (r *taxRepository) ListFilingStatuses(ctx context.Context) ([]tax.FilingStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, created_at, updated_at FROM filing_statuses ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list filing statuses: %w", err)
	}
	defer rows.Close()

	var statuses []tax.FilingStatus
	for rows.Next() {
		var fs tax.FilingStatus
		if err := rows.Scan(&fs.ID, &fs.Name, &fs.IsActive, &fs.CreatedAt, &fs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan filing status: %w", err)
		}
		statuses = append(statuses, fs)
	}
	return statuses, rows.Err()
}

func (r *taxRepository) ListBracketsByFilingStatus(ctx context.Context, filingStatusID string) ([]tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, filing_status_id, min_income, max_income, rate, created_at, updated_at
		FROM tax_brackets
		WHERE filing_status_id = $1
		ORDER BY min_income
	`

	rows, err := q.Query(ctx, query, filingStatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax brackets: %w", err)
	}
	defer rows.Close()

	var brackets []tax.Bracket
	for rows.Next() {
		var b tax.Bracket
		if err := rows.Scan(&b.ID, &b.FilingStatusID, &b.MinIncome, &b.MaxIncome, &b.Rate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	return brackets, rows.Err()
}

func (r *taxRepository) ReplaceBrackets(ctx context.Context, filingStatusID string, brackets []tax.Bracket) ([]tax.Bracket, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		if _, err := q.Exec(txCtx, `DELETE FROM tax_brackets WHERE filing_status_id = $1`, filingStatusID); err != nil {
			return fmt.Errorf("failed to clear tax brackets: %w", err)
		}
		for _, b := range brackets {
			_, err := q.Exec(txCtx, `
				INSERT INTO tax_brackets (filing_status_id, min_income, max_income, rate)
				VALUES ($1, $2, $3, $4)
			`, filingStatusID, b.MinIncome, b.MaxIncome, b.Rate)
			if err != nil {
				return fmt.Errorf("failed to insert tax bracket: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListBracketsByFilingStatus(ctx, filingStatusID)
}
