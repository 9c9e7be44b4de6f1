package contract

import "context"

type ContractRepository interface {
	// GetActiveByEmployeeID returns the single active contract for the
	// employee, or ErrNoActiveContract.
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (Contract, error)
}
