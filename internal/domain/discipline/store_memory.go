package discipline

import (
	"context"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/memstore"
)

type MemoryStore struct {
	table *memstore.Table[contract.DisciplinaryRecord]
}

func NewMemoryStore(opts ...memstore.Option) *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[contract.DisciplinaryRecord](opts...)}
}

func (s *MemoryStore) ListRecords(ctx context.Context) ([]contract.DisciplinaryRecord, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) CreateRecord(ctx context.Context, in contract.DisciplinaryRecordInput, incidentDate time.Time) (contract.DisciplinaryRecord, error) {
	return s.table.Insert(func(id int64, createdAt time.Time) contract.DisciplinaryRecord {
		return contract.DisciplinaryRecord{
			ID:           id,
			EmployeeID:   in.EmployeeID,
			IncidentDate: contract.FormatDate(incidentDate),
			Description:  in.Description,
			ActionTaken:  in.ActionTaken,
			CreatedAt:    createdAt,
		}
	}), nil
}
