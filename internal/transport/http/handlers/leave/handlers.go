package leavehandler

import (
	"context"
	"net/http"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/shared"
)

type LeaveService interface {
	ListRequests(ctx context.Context) ([]contract.LeaveRequest, error)
	CreateRequest(ctx context.Context, in contract.LeaveRequestInput) (contract.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, update contract.LeaveStatusUpdate) (contract.LeaveRequest, error)
}

type Handler struct {
	Service LeaveService
}

func NewHandler(service LeaveService) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.LeaveList:         h.handleList,
		contract.LeaveCreate:       h.handleCreate,
		contract.LeaveUpdateStatus: h.handleUpdateStatus,
		contract.LeaveTypesList:    h.handleListTypes,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListRequests(r.Context())
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	api.OK(w, requests)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload contract.LeaveRequestInput
	if !shared.Decode(w, r, &payload) {
		return
	}
	req, err := h.Service.CreateRequest(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, req)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, shared.MsgLeaveRequestNotFound)
		return
	}
	var payload contract.LeaveStatusUpdate
	if !shared.Decode(w, r, &payload) {
		return
	}
	req, err := h.Service.UpdateStatus(r.Context(), id, payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, req)
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	api.OK(w, contract.LeaveTypes)
}
