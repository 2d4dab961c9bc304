package leave

import (
	"context"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/memstore"
)

type MemoryStore struct {
	table *memstore.Table[contract.LeaveRequest]
}

func NewMemoryStore(opts ...memstore.Option) *MemoryStore {
	return &MemoryStore{table: memstore.NewTable[contract.LeaveRequest](opts...)}
}

func (s *MemoryStore) ListRequests(ctx context.Context) ([]contract.LeaveRequest, error) {
	return s.table.List(), nil
}

func (s *MemoryStore) CreateRequest(ctx context.Context, in contract.LeaveRequestInput, start, end time.Time) (contract.LeaveRequest, error) {
	return s.table.Insert(func(id int64, createdAt time.Time) contract.LeaveRequest {
		return contract.LeaveRequest{
			ID:         id,
			EmployeeID: in.EmployeeID,
			StartDate:  contract.FormatDate(start),
			EndDate:    contract.FormatDate(end),
			Type:       in.Type,
			Reason:     in.Reason,
			Status:     contract.LeaveStatusPending,
			CreatedAt:  createdAt,
		}
	}), nil
}

func (s *MemoryStore) UpdateRequestStatus(ctx context.Context, id int64, status contract.LeaveStatus) (contract.LeaveRequest, contract.LeaveStatus, error) {
	var previous contract.LeaveStatus
	req, ok := s.table.Update(id, func(req *contract.LeaveRequest) {
		previous = req.Status
		req.Status = status
	})
	if !ok {
		return contract.LeaveRequest{}, "", ErrLeaveRequestNotFound
	}
	return req, previous, nil
}
