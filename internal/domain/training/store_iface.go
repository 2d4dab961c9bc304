package training

import (
	"context"
	"time"

	"hrdesk/internal/contract"
)

type StoreAPI interface {
	ListRecords(ctx context.Context) ([]contract.TrainingRecord, error)
	// expiry is nil when the record does not expire.
	CreateRecord(ctx context.Context, in contract.TrainingRecordInput, completion time.Time, expiry *time.Time) (contract.TrainingRecord, error)
}

type EmployeeLookup interface {
	EmployeeExists(ctx context.Context, id int64) (bool, error)
}
