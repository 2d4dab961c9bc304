package shared

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
)

// PathID parses the {id} route parameter. Non-numeric or non-positive ids report ok=false.
func PathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Decode reads and validates a JSON body into payload, writing the 400 or 413 response
// itself when it returns false.
func Decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	if err := contract.Decode(bytes.NewReader(raw), payload); err != nil {
		WriteError(w, r, err)
		return false
	}
	return true
}
