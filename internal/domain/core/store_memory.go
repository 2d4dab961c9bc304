package core

import (
	"context"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/memstore"
)

// MemoryStore keeps employees in process memory.
type MemoryStore struct {
	table *memstore.Table[contract.Employee]
}

func NewMemoryStore(opts ...memstore.Option) *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[contract.Employee](opts...)}
}

func (s *MemoryStore) ListEmployees(ctx context.Context) ([]contract.Employee, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) GetEmployee(ctx context.Context, id int64) (contract.Employee, bool, error) {
	emp, ok := s.table.Get(id)
	return emp, ok, nil
}

func (s *MemoryStore) CreateEmployee(ctx context.Context, in contract.EmployeeInput) (contract.Employee, error) {
	return s.table.Insert(func(id int64, createdAt time.Time) contract.Employee {
		return contract.Employee{
			ID:         id,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			IDNumber:   in.IDNumber,
			Position:   in.Position,
			Department: in.Department,
			IsActive:   in.Active(),
			CreatedAt:  createdAt,
		}
	}), nil
}

func (s *MemoryStore) UpdateEmployee(ctx context.Context, id int64, patch contract.EmployeePatch) (contract.Employee, error) {
	emp, ok := s.table.Update(id, func(emp *contract.Employee) {
		patch.Apply(emp)
	})
	if !ok {
		return contract.Employee{}, ErrEmployeeNotFound
	}
	return emp, nil
}
