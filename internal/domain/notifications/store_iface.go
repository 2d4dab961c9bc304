package notifications

import (
	"context"

	"hrdesk/internal/contract"
)

type StoreAPI interface {
	// CreateNotification ignores n.ID and n.CreatedAt and returns the stored row.
	CreateNotification(ctx context.Context, n contract.Notification) (contract.Notification, error)
	ListNotifications(ctx context.Context) ([]contract.Notification, error)
}
