package shared

import (
	"net/http"

	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/transport/http/api"
)

const (
	MsgEmployeeNotFound     = "Employee not found"
	MsgLeaveRequestNotFound = "Leave request not found"
)

// WriteError maps a service error onto the response: validation failures to 400,
// not-found sentinels to 404, and everything else to a logged 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *contract.ValidationError
	switch {
	case errors.As(err, &verr):
		api.FailValidation(w, verr)
	case errors.Is(err, core.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, MsgEmployeeNotFound)
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		api.Fail(w, http.StatusNotFound, MsgLeaveRequestNotFound)
	default:
		api.Internal(w, r, err)
	}
}
