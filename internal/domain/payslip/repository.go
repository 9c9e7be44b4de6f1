package payslip

import "context"

type PayslipRepository interface {
	Create(ctx context.Context, result Result) (Result, error)
	GetByID(ctx context.Context, id string) (Result, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, period Period) (Result, error)
	List(ctx context.Context, filter Filter) ([]Result, int64, error)
	Delete(ctx context.Context, id string) error
}
