package notificationshandler

import (
	"context"
	"net/http"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
)

type NotificationService interface {
	List(ctx context.Context) ([]contract.Notification, error)
}

type Handler struct {
	Service NotificationService
}

func NewHandler(service NotificationService) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.NotificationsList: h.handleList,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	api.OK(w, items)
}
