package core

import (
	"context"

	"hrdesk/internal/contract"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListEmployees(ctx context.Context) ([]contract.Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (contract.Employee, bool, error) {
	if id <= 0 {
		return contract.Employee{}, false, nil
	}
	return s.store.GetEmployee(ctx, id)
}

// EmployeeExists backs the employeeId checks of the dependent record kinds.
func (s *Service) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	_, found, err := s.GetEmployee(ctx, id)
	return found, err
}

func (s *Service) CreateEmployee(ctx context.Context, in contract.EmployeeInput) (contract.Employee, error) {
	if err := contract.Validate(&in); err != nil {
		return contract.Employee{}, err
	}
	return s.store.CreateEmployee(ctx, in)
}

// UpdateEmployee merges patch into the employee. An empty patch returns the current record.
func (s *Service) UpdateEmployee(ctx context.Context, id int64, patch contract.EmployeePatch) (contract.Employee, error) {
	if err := contract.Validate(&patch); err != nil {
		return contract.Employee{}, err
	}
	if patch.Empty() {
		emp, found, err := s.GetEmployee(ctx, id)
		if err != nil {
			return contract.Employee{}, err
		}
		if !found {
			return contract.Employee{}, ErrEmployeeNotFound
		}
		return emp, nil
	}
	if id <= 0 {
		return contract.Employee{}, ErrEmployeeNotFound
	}
	return s.store.UpdateEmployee(ctx, id, patch)
}
