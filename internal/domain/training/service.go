package training

import (
	"context"
	"time"

	"hrdesk/internal/contract"
)

type Service struct {
	store     StoreAPI
	employees EmployeeLookup
}

func NewService(store StoreAPI, employees EmployeeLookup) *Service {
	return &Service{store: store, employees: employees}
}

func (s *Service) ListRecords(ctx context.Context) ([]contract.TrainingRecord, error) {
	return s.store.ListRecords(ctx)
}

func (s *Service) CreateRecord(ctx context.Context, in contract.TrainingRecordInput) (contract.TrainingRecord, error) {
	if err := contract.Validate(&in); err != nil {
		return contract.TrainingRecord{}, err
	}
	completion, _ := contract.ParseDate(in.CompletionDate)
	var expiry *time.Time
	if in.ExpiryDate != nil {
		parsed, _ := contract.ParseDate(*in.ExpiryDate)
		if parsed.Before(completion) {
			return contract.TrainingRecord{}, contract.Invalid("expiryDate", "Expiry date must be on or after completion date")
		}
		expiry = &parsed
	}
	exists, err := s.employees.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return contract.TrainingRecord{}, err
	}
	if !exists {
		return contract.TrainingRecord{}, contract.Invalid("employeeId", "Employee does not exist")
	}
	return s.store.CreateRecord(ctx, in, completion, expiry)
}

// Expired reports whether rec has an expiry date before today.
func Expired(rec contract.TrainingRecord, today time.Time) bool {
	if rec.ExpiryDate == nil {
		return false
	}
	return *rec.ExpiryDate < contract.FormatDate(today)
}
