package leave

import (
	"context"
	"fmt"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/logger"
)

const defaultNotifyTimeout = 5 * time.Second

type Service struct {
	store         StoreAPI
	employees     EmployeeLookup
	notifier      Notifier
	notifyTimeout time.Duration
}

// NewService wires the lifecycle. A nil notifier disables long leave notices.
func NewService(store StoreAPI, employees EmployeeLookup, notifier Notifier, notifyTimeout time.Duration) *Service {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &Service{store: store, employees: employees, notifier: notifier, notifyTimeout: notifyTimeout}
}

func (s *Service) ListRequests(ctx context.Context) ([]contract.LeaveRequest, error) {
	return s.store.ListRequests(ctx)
}

// CreateRequest persists a Pending request and then notifies HR when it spans more than
// LongLeaveThresholdDays. The notifier outcome never affects the result.
func (s *Service) CreateRequest(ctx context.Context, in contract.LeaveRequestInput) (contract.LeaveRequest, error) {
	if err := contract.Validate(&in); err != nil {
		return contract.LeaveRequest{}, err
	}
	exists, err := s.employees.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return contract.LeaveRequest{}, err
	}
	if !exists {
		return contract.LeaveRequest{}, contract.Invalid("employeeId", "Employee does not exist")
	}

	start, end := in.Period()
	req, err := s.store.CreateRequest(ctx, in, start, end)
	if err != nil {
		return contract.LeaveRequest{}, err
	}

	if days := CalculateDays(start, end); RequiresNotification(days) {
		s.notify(ctx, LongLeaveNotice{Request: req, Days: days})
	}
	return req, nil
}

// UpdateStatus sets the status of request id. Any transition is accepted; leaving a
// terminal status is logged.
func (s *Service) UpdateStatus(ctx context.Context, id int64, update contract.LeaveStatusUpdate) (contract.LeaveRequest, error) {
	if err := contract.Validate(&update); err != nil {
		return contract.LeaveRequest{}, err
	}
	if id <= 0 {
		return contract.LeaveRequest{}, ErrLeaveRequestNotFound
	}
	req, previous, err := s.store.UpdateRequestStatus(ctx, id, update.Status)
	if err != nil {
		return contract.LeaveRequest{}, err
	}
	if previous.Terminal() && previous != update.Status {
		logger.FromContext(ctx).Warn().
			Int64("leaveRequestId", id).
			Str("from", string(previous)).
			Str("to", string(update.Status)).
			Msg("leave request moved out of a terminal status")
	}
	return req, nil
}

func (s *Service) notify(ctx context.Context, notice LongLeaveNotice) {
	if s.notifier == nil {
		return
	}
	log := logger.FromContext(ctx)
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int64("leaveRequestId", notice.Request.ID).Str("panic", fmt.Sprint(r)).Msg("long leave notifier panicked")
		}
	}()

	if err := s.notifier.NotifyLongLeave(notifyCtx, notice); err != nil {
		log.Warn().Err(err).Int64("leaveRequestId", notice.Request.ID).Int("days", notice.Days).Msg("long leave notification failed")
	}
}
