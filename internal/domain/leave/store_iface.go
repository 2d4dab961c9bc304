package leave

import (
	"context"
	"time"

	"hrdesk/internal/contract"
)

type StoreAPI interface {
	ListRequests(ctx context.Context) ([]contract.LeaveRequest, error)
	// CreateRequest persists in with status Pending. start and end are the parsed period of in.
	CreateRequest(ctx context.Context, in contract.LeaveRequestInput, start, end time.Time) (contract.LeaveRequest, error)
	// UpdateRequestStatus returns the updated row and the status it replaced,
	// or ErrLeaveRequestNotFound.
	UpdateRequestStatus(ctx context.Context, id int64, status contract.LeaveStatus) (contract.LeaveRequest, contract.LeaveStatus, error)
}

// EmployeeLookup is satisfied by core.Service.
type EmployeeLookup interface {
	EmployeeExists(ctx context.Context, id int64) (bool, error)
}

// Notifier receives long leave notices. Errors are logged by the caller and never fail a create.
type Notifier interface {
	NotifyLongLeave(ctx context.Context, notice LongLeaveNotice) error
}
