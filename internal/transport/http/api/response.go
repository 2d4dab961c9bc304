package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/logger"
)

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Get().Warn().Err(err).Msg("write json failed")
	}
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, contract.ErrorBody{Message: message})
}

func FailValidation(w http.ResponseWriter, err *contract.ValidationError) {
	WriteJSON(w, http.StatusBadRequest, err.Body())
}

// Internal logs err against the request and answers with a generic 500.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	Fail(w, http.StatusInternalServerError, "internal server error")
}

// Attachment writes a downloadable file.
func Attachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Get().Warn().Err(err).Str("file", filename).Msg("write attachment failed")
	}
}
