package notifications

import (
	"context"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/memstore"
)

type MemoryStore struct {
	table *memstore.Table[contract.Notification]
}

func NewMemoryStore(opts ...memstore.Option) *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[contract.Notification](opts...)}
}

func (s *MemoryStore) CreateNotification(ctx context.Context, n contract.Notification) (contract.Notification, error) {
	return s.table.Insert(func(id int64, createdAt time.Time) contract.Notification {
		n.ID = id
		n.CreatedAt = createdAt
		return n
	}), nil
}

func (s *MemoryStore) ListNotifications(ctx context.Context) ([]contract.Notification, error) {
	return s.table.List(), nil
}
