package traininghandler

import (
	"context"
	"net/http"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/shared"
)

type TrainingService interface {
	ListRecords(ctx context.Context) ([]contract.TrainingRecord, error)
	CreateRecord(ctx context.Context, in contract.TrainingRecordInput) (contract.TrainingRecord, error)
}

type Handler struct {
	Service TrainingService
}

func NewHandler(service TrainingService) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.TrainingList:   h.handleList,
		contract.TrainingCreate: h.handleCreate,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListRecords(r.Context())
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	api.OK(w, records)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload contract.TrainingRecordInput
	if !shared.Decode(w, r, &payload) {
		return
	}
	rec, err := h.Service.CreateRecord(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, rec)
}
