package payslip

import "context"

type PayslipService interface {
	// GeneratePayslip computes, persists and returns the payslip for
	// one employee over the period.
	GeneratePayslip(ctx context.Context, employeeID string, period Period) (Result, error)
	// GeneratePayslips runs independent per-employee computations in
	// parallel; one employee's failure never aborts the rest.
	GeneratePayslips(ctx context.Context, req GeneratePayslipsRequest) (BatchResponse, error)
	GetPayslip(ctx context.Context, id string) (Result, error)
	ListPayslips(ctx context.Context, filter Filter) ([]Result, int64, error)
}
