package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActiveByIDs(ctx context.Context, ids []string) ([]Employee, error)
	GetAllActive(ctx context.Context) ([]Employee, error)
}
