package reportshandler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/shared"
)

type ReportService interface {
	Summary(ctx context.Context, today time.Time) (contract.DashboardSummaryBody, error)
	Details(ctx context.Context, id int64) (contract.EmployeeWithDetails, error)
	ProfilePDF(ctx context.Context, id int64, today time.Time) ([]byte, error)
	WorkforceWorkbook(ctx context.Context) (*bytes.Buffer, error)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Service ReportService
	Now     func() time.Time
}

func NewHandler(service ReportService) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.DashboardSummary:    h.handleSummary,
		contract.EmployeesDetails:    h.handleDetails,
		contract.EmployeesProfilePDF: h.handleProfilePDF,
		contract.WorkforceExport:     h.handleWorkforce,
	}
}

func (h *Handler) today() time.Time {
	return h.Now().UTC()
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context(), h.today())
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	api.OK(w, summary)
}

func (h *Handler) handleDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, shared.MsgEmployeeNotFound)
		return
	}
	details, err := h.Service.Details(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, details)
}

func (h *Handler) handleProfilePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, shared.MsgEmployeeNotFound)
		return
	}
	doc, err := h.Service.ProfilePDF(r.Context(), id, h.today())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Attachment(w, "application/pdf", fmt.Sprintf("employee-%d.pdf", id), doc)
}

func (h *Handler) handleWorkforce(w http.ResponseWriter, r *http.Request) {
	buf, err := h.Service.WorkforceWorkbook(r.Context())
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	filename := fmt.Sprintf("workforce-%s.xlsx", contract.FormatDate(h.today()))
	api.Attachment(w, xlsxContentType, filename, buf.Bytes())
}
