package corehandler

import (
	"context"
	"net/http"

	"hrdesk/internal/contract"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/shared"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]contract.Employee, error)
	GetEmployee(ctx context.Context, id int64) (contract.Employee, bool, error)
	CreateEmployee(ctx context.Context, in contract.EmployeeInput) (contract.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch contract.EmployeePatch) (contract.Employee, error)
}

type Handler struct {
	Service EmployeeService
}

func NewHandler(service EmployeeService) *Handler {
	return &Handler{Service: service}
}

// Handlers returns the employee operations keyed by contract endpoint name.
func (h *Handler) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.EmployeesList:   h.handleList,
		contract.EmployeesGet:    h.handleGet,
		contract.EmployeesCreate: h.handleCreate,
		contract.EmployeesUpdate: h.handleUpdate,
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	api.OK(w, employees)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, shared.MsgEmployeeNotFound)
		return
	}
	emp, found, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		api.Internal(w, r, err)
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, shared.MsgEmployeeNotFound)
		return
	}
	api.OK(w, emp)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload contract.EmployeeInput
	if !shared.Decode(w, r, &payload) {
		return
	}
	emp, err := h.Service.CreateEmployee(r.Context(), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, emp)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(r)
	if !ok {
		api.Fail(w, http.StatusNotFound, shared.MsgEmployeeNotFound)
		return
	}
	var payload contract.EmployeePatch
	if !shared.Decode(w, r, &payload) {
		return
	}
	emp, err := h.Service.UpdateEmployee(r.Context(), id, payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.OK(w, emp)
}
