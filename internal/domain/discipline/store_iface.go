package discipline

import (
	"context"
	"time"

	"hrdesk/internal/contract"
)

type StoreAPI interface {
	ListRecords(ctx context.Context) ([]contract.DisciplinaryRecord, error)
	CreateRecord(ctx context.Context, in contract.DisciplinaryRecordInput, incidentDate time.Time) (contract.DisciplinaryRecord, error)
}

type EmployeeLookup interface {
	EmployeeExists(ctx context.Context, id int64) (bool, error)
}
