package training

import (
	"context"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/memstore"
)

type MemoryStore struct {
	table *memstore.Table[contract.TrainingRecord]
}

func NewMemoryStore(opts ...memstore.Option) *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[contract.TrainingRecord](opts...)}
}

func (s *MemoryStore) ListRecords(ctx context.Context) ([]contract.TrainingRecord, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) CreateRecord(ctx context.Context, in contract.TrainingRecordInput, completion time.Time, expiry *time.Time) (contract.TrainingRecord, error) {
	var expiryDate *string
	if expiry != nil {
		formatted := contract.FormatDate(*expiry)
		expiryDate = &formatted
	}
	return s.table.Insert(func(id int64, createdAt time.Time) contract.TrainingRecord {
		return contract.TrainingRecord{
			ID:             id,
			EmployeeID:     in.EmployeeID,
			TrainingName:   in.TrainingName,
			CompletionDate: contract.FormatDate(completion),
			ExpiryDate:     expiryDate,
			CertificateURL: in.CertificateURL,
			CreatedAt:      createdAt,
		}
	}), nil
}
