package contracthandler

import (
	"net/http"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
)

type Handler struct {
	docs []contract.EndpointDoc
}

func NewHandler() *Handler {
	return &Handler{docs: contract.Describe()}
}

func (h *Handler) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.ContractDescribe: h.handleDescribe,
	}
}

func (h *Handler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	api.OK(w, h.docs)
}
