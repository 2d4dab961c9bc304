package notifications

import (
	"context"

	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/db"
)

const notificationColumns = `id, kind, leave_request_id, employee_id, message, delivered, COALESCE(error, ''), created_at`

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) CreateNotification(ctx context.Context, n contract.Notification) (contract.Notification, error) {
	out, err := scanNotification(s.DB.QueryRow(ctx, `
    INSERT INTO notifications (kind, leave_request_id, employee_id, message, delivered, error)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING `+notificationColumns,
		n.Kind, n.LeaveRequestID, n.EmployeeID, n.Message, n.Delivered, db.NullIfEmpty(n.Error),
	))
	if err != nil {
		return contract.Notification{}, errors.Wrap(err, "insert notification")
	}
	return out, nil
}

func (s *Store) ListNotifications(ctx context.Context) ([]contract.Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+notificationColumns+`
    FROM notifications
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	defer rows.Close()

	out := []contract.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, errors.Wrap(rows.Err(), "list notifications")
}

func scanNotification(row db.RowScanner) (contract.Notification, error) {
	var n contract.Notification
	err := row.Scan(&n.ID, &n.Kind, &n.LeaveRequestID, &n.EmployeeID, &n.Message, &n.Delivered, &n.Error, &n.CreatedAt)
	return n, err
}
