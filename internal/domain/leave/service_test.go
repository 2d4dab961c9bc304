package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/memstore"
)

type knownEmployees map[int64]bool

func (k knownEmployees) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	return k[id], nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []LongLeaveNotice
	err     error
	panics  bool
}

func (n *recordingNotifier) NotifyLongLeave(ctx context.Context, notice LongLeaveNotice) error {
	n.mu.Lock()
	n.notices = append(n.notices, notice)
	n.mu.Unlock()
	if n.panics {
		panic("smtp exploded")
	}
	return n.err
}

type blockingNotifier struct{}

func (blockingNotifier) NotifyLongLeave(ctx context.Context, notice LongLeaveNotice) error {
	<-ctx.Done()
	return ctx.Err()
}

func leaveInput(start, end string) contract.LeaveRequestInput {
	return contract.LeaveRequestInput{
		EmployeeID: 1,
		StartDate:  start,
		EndDate:    end,
		Type:       contract.LeaveTypeAnnual,
		Reason:     "Family holiday",
	}
}

func newTestService(notifier Notifier, opts ...memstore.Option) *Service {
	return NewService(NewMemoryStore(opts...), knownEmployees{1: true}, notifier, time.Second)
}

func TestCreateLongLeaveNotifiesOnce(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	req, err := svc.CreateRequest(context.Background(), leaveInput("2024-05-01", "2024-05-05"))
	require.NoError(t, err)
	assert.Equal(t, contract.LeaveStatusPending, req.Status)
	assert.Positive(t, req.ID)

	require.Len(t, notifier.notices, 1)
	assert.Equal(t, 5, notifier.notices[0].Days)
	assert.Equal(t, req, notifier.notices[0].Request)
	assert.NoError(t, contract.Validate(&req))
}

func TestCreateShortLeaveDoesNotNotify(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	for _, period := range [][2]string{{"2024-05-01", "2024-05-01"}, {"2024-05-01", "2024-05-03"}} {
		req, err := svc.CreateRequest(context.Background(), leaveInput(period[0], period[1]))
		require.NoError(t, err)
		assert.Equal(t, contract.LeaveStatusPending, req.Status)
	}
	assert.Empty(t, notifier.notices)
}

func TestNotifierFailureNeverFailsCreate(t *testing.T) {
	ctx := context.Background()
	for name, notifier := range map[string]Notifier{
		"error":   &recordingNotifier{err: errors.New("smtp down")},
		"panic":   &recordingNotifier{panics: true},
		"timeout": blockingNotifier{},
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewService(NewMemoryStore(), knownEmployees{1: true}, notifier, 10*time.Millisecond)
			req, err := svc.CreateRequest(ctx, leaveInput("2024-05-01", "2024-05-10"))
			require.NoError(t, err)

			list, err := svc.ListRequests(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, req, list[0])
		})
	}
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc := newTestService(nil)
	in := leaveInput("2024-05-01", "2024-05-02")
	in.EmployeeID = 99

	_, err := svc.CreateRequest(context.Background(), in)
	var verr *contract.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "employeeId", verr.Field)
	assert.Equal(t, "Employee does not exist", verr.Message)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc := newTestService(nil)

	badType := leaveInput("2024-05-01", "2024-05-02")
	badType.Type = "Sabbatical"
	cases := map[string]contract.LeaveRequestInput{
		"endDate":   leaveInput("2024-05-05", "2024-05-01"),
		"type":      badType,
		"startDate": leaveInput("05/01/2024", "2024-05-02"),
	}
	for field, in := range cases {
		_, err := svc.CreateRequest(context.Background(), in)
		var verr *contract.ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, field, verr.Field)
	}
	list, err := svc.ListRequests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateStatusPersists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)
	req, err := svc.CreateRequest(ctx, leaveInput("2024-05-01", "2024-05-02"))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, req.ID, contract.LeaveStatusUpdate{Status: contract.LeaveStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, contract.LeaveStatusApproved, updated.Status)

	list, err := svc.ListRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, contract.LeaveStatusApproved, list[0].Status)

	// any to any is accepted
	reopened, err := svc.UpdateStatus(ctx, req.ID, contract.LeaveStatusUpdate{Status: contract.LeaveStatusPending})
	require.NoError(t, err)
	assert.Equal(t, contract.LeaveStatusPending, reopened.Status)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.UpdateStatus(context.Background(), 12, contract.LeaveStatusUpdate{Status: contract.LeaveStatusRejected})
	assert.ErrorIs(t, err, ErrLeaveRequestNotFound)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.UpdateStatus(context.Background(), 1, contract.LeaveStatusUpdate{Status: "Cancelled"})
	var verr *contract.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "status", verr.Field)
}

func TestListIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc := newTestService(nil, memstore.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}))
	for _, reason := range []string{"A", "B", "C"} {
		in := leaveInput("2024-05-01", "2024-05-01")
		in.Reason = reason
		_, err := svc.CreateRequest(ctx, in)
		require.NoError(t, err)
	}
	list, err := svc.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].Reason)
	assert.Equal(t, "A", list[2].Reason)
}
