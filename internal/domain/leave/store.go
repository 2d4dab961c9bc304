package leave

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/db"
)

const requestColumns = `id, employee_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), type, reason, status, created_at`

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListRequests(ctx context.Context) ([]contract.LeaveRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list leave requests")
	}
	defer rows.Close()

	out := []contract.LeaveRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, errors.Wrap(rows.Err(), "list leave requests")
}

func (s *Store) CreateRequest(ctx context.Context, in contract.LeaveRequestInput, start, end time.Time) (contract.LeaveRequest, error) {
	req, err := scanRequest(s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, type, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING `+requestColumns,
		in.EmployeeID, start, end, in.Type, in.Reason, contract.LeaveStatusPending,
	))
	if err != nil {
		return contract.LeaveRequest{}, errors.Wrap(err, "insert leave request")
	}
	return req, nil
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id int64, status contract.LeaveStatus) (contract.LeaveRequest, contract.LeaveStatus, error) {
	var previous contract.LeaveStatus
	var req contract.LeaveRequest
	err := s.DB.QueryRow(ctx, `
    WITH prior AS (
      SELECT id, status FROM leave_requests WHERE id = $1 FOR UPDATE
    )
    UPDATE leave_requests lr
    SET status = $2
    FROM prior
    WHERE lr.id = prior.id
    RETURNING prior.status, lr.id, lr.employee_id, to_char(lr.start_date, 'YYYY-MM-DD'), to_char(lr.end_date, 'YYYY-MM-DD'),
      lr.type, lr.reason, lr.status, lr.created_at
  `, id, status).Scan(
		&previous, &req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
		&req.Type, &req.Reason, &req.Status, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.LeaveRequest{}, "", ErrLeaveRequestNotFound
	}
	if err != nil {
		return contract.LeaveRequest{}, "", errors.Wrap(err, "update leave status")
	}
	return req, previous, nil
}

func scanRequest(row db.RowScanner) (contract.LeaveRequest, error) {
	var req contract.LeaveRequest
	err := row.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Type, &req.Reason, &req.Status, &req.CreatedAt)
	return req, err
}
