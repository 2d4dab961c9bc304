package discipline

import (
	"context"

	"hrdesk/internal/contract"
)

type Service struct {
	store     StoreAPI
	employees EmployeeLookup
}

func NewService(store StoreAPI, employees EmployeeLookup) *Service {
	return &Service{store: store, employees: employees}
}

func (s *Service) ListRecords(ctx context.Context) ([]contract.DisciplinaryRecord, error) {
	return s.store.ListRecords(ctx)
}

func (s *Service) CreateRecord(ctx context.Context, in contract.DisciplinaryRecordInput) (contract.DisciplinaryRecord, error) {
	if err := contract.Validate(&in); err != nil {
		return contract.DisciplinaryRecord{}, err
	}
	exists, err := s.employees.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return contract.DisciplinaryRecord{}, err
	}
	if !exists {
		return contract.DisciplinaryRecord{}, contract.Invalid("employeeId", "Employee does not exist")
	}
	incidentDate, _ := contract.ParseDate(in.IncidentDate)
	return s.store.CreateRecord(ctx, in, incidentDate)
}
