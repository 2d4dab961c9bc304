package notifications

import (
	"context"

	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/platform/logger"
)

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Recorder is satisfied by metrics.Collector.
type Recorder interface {
	RecordNotification(delivered bool)
}

// Service mails HR about long leave requests and keeps a log of every attempt.
type Service struct {
	store   StoreAPI
	Mailer  Mailer
	From    string
	To      string
	Metrics Recorder
}

func New(store StoreAPI, mailer Mailer, from, to string) *Service {
	if from == "" {
		from = "no-reply@example.com"
	}
	return &Service{store: store, Mailer: mailer, From: from, To: to}
}

// NotifyLongLeave implements leave.Notifier. The attempt is logged even when delivery fails;
// the returned error is the delivery or logging failure.
func (s *Service) NotifyLongLeave(ctx context.Context, notice leave.LongLeaveNotice) error {
	log := logger.FromContext(ctx)
	n := contract.Notification{
		Kind:           KindLongLeave,
		LeaveRequestID: notice.Request.ID,
		EmployeeID:     notice.Request.EmployeeID,
		Message:        notice.Message(),
	}

	var sendErr error
	if s.Mailer == nil || s.To == "" {
		n.Error = errDeliveryDisabled
		log.Info().Int64("leaveRequestId", n.LeaveRequestID).Int("days", notice.Days).Msg("long leave request recorded, email delivery disabled")
	} else {
		sendErr = s.Mailer.Send(ctx, s.From, s.To, notice.Subject(), n.Message)
		n.Delivered = sendErr == nil
		if sendErr != nil {
			n.Error = sendErr.Error()
		}
	}
	if s.Metrics != nil {
		s.Metrics.RecordNotification(n.Delivered)
	}

	if _, err := s.store.CreateNotification(context.WithoutCancel(ctx), n); err != nil {
		log.Warn().Err(err).Int64("leaveRequestId", n.LeaveRequestID).Msg("notification log write failed")
		if sendErr == nil {
			return errors.Wrap(err, "record notification")
		}
	}
	return sendErr
}

func (s *Service) List(ctx context.Context) ([]contract.Notification, error) {
	return s.store.ListNotifications(ctx)
}
