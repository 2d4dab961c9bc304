package core

import (
	"context"

	"hrdesk/internal/contract"
)

// StoreAPI is the employee Record Store.
type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]contract.Employee, error)
	// GetEmployee reports found=false, not an error, when id is absent.
	GetEmployee(ctx context.Context, id int64) (contract.Employee, bool, error)
	CreateEmployee(ctx context.Context, in contract.EmployeeInput) (contract.Employee, error)
	// UpdateEmployee returns ErrEmployeeNotFound when id is absent.
	UpdateEmployee(ctx context.Context, id int64, patch contract.EmployeePatch) (contract.Employee, error)
}
