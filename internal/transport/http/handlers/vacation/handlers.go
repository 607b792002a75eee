package vacationhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vacations/internal/domain/vacation"
	"vacations/internal/transport/http/api"
	"vacations/internal/transport/http/middleware"
	"vacations/internal/transport/http/shared"
)

type Handler struct {
	Service *vacation.Service
}

func NewHandler(service *vacation.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees/{employeeID}", func(r chi.Router) {
		r.Get("/requests", h.handleListEmployeeRequests)
		r.Post("/requests", h.handleSubmitRequest)
		r.Get("/remaining-days", h.handleRemainingDays)
	})
	// Manager routes stay flat: the reports handler registers under the
	// same /managers/{managerID} subtree.
	r.Get("/managers/{managerID}/requests", h.handleListAllRequests)
	r.Get("/managers/{managerID}/overlapping-requests", h.handleOverlappingRequests)
	r.Put("/managers/{managerID}/requests/{requestID}", h.handleProcessRequest)
}

func (h *Handler) handleListEmployeeRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID")
	if !ok {
		return
	}
	status := r.URL.Query().Get("status")
	requests := h.Service.RequestsByApplicant(employeeID, status)
	if requests == nil {
		requests = []vacation.VacationRequest{}
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemainingDays(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID")
	if !ok {
		return
	}
	balance, err := h.Service.Balance(employeeID)
	if err != nil {
		failForError(w, r, err)
		return
	}
	api.Success(w, map[string]int{"remaining_vacation_days": balance}, middleware.GetRequestID(r.Context()))
}

type submitPayload struct {
	StartDate string `json:"vacation_start_date"`
	EndDate   string `json:"vacation_end_date"`
}

func (h *Handler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID")
	if !ok {
		return
	}

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("vacation_start_date", payload.StartDate, "is required")
	validator.Required("vacation_end_date", payload.EndDate, "is required")
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	start, startOK := validator.Date("vacation_start_date", payload.StartDate)
	end, endOK := validator.Date("vacation_end_date", payload.EndDate)
	if !startOK || !endOK {
		validator.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	created, err := h.Service.Submit(employeeID, start, end)
	if err != nil {
		failForError(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListAllRequests(w http.ResponseWriter, r *http.Request) {
	managerID, ok := pathID(w, r, "managerID")
	if !ok {
		return
	}
	if !h.Service.IsManager(managerID) {
		failForError(w, r, vacation.ErrNotManager)
		return
	}

	status := r.URL.Query().Get("status")
	requests := shared.Page(h.Service.AllRequests(status), shared.ParsePagination(r, 50, 200))
	if requests == nil {
		requests = []vacation.VacationRequest{}
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOverlappingRequests(w http.ResponseWriter, r *http.Request) {
	managerID, ok := pathID(w, r, "managerID")
	if !ok {
		return
	}
	if !h.Service.IsManager(managerID) {
		failForError(w, r, vacation.ErrNotManager)
		return
	}
	pairs := h.Service.FindOverlaps()
	if pairs == nil {
		pairs = []vacation.OverlapPair{}
	}
	api.Success(w, pairs, middleware.GetRequestID(r.Context()))
}

type decisionPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleProcessRequest(w http.ResponseWriter, r *http.Request) {
	managerID, ok := pathID(w, r, "managerID")
	if !ok {
		return
	}
	requestID, ok := pathID(w, r, "requestID")
	if !ok {
		return
	}

	var payload decisionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	decided, err := h.Service.Decide(requestID, managerID, payload.Status)
	if err != nil {
		failForError(w, r, err)
		return
	}
	api.Success(w, decided, middleware.GetRequestID(r.Context()))
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "identifier must be an integer", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return id, true
}

func failForError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, vacation.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", err.Error(), requestID)
	case errors.Is(err, vacation.ErrRequestNotFound):
		api.Fail(w, http.StatusNotFound, "request_not_found", err.Error(), requestID)
	case errors.Is(err, vacation.ErrNotManager):
		api.Fail(w, http.StatusUnauthorized, "unauthorized", err.Error(), requestID)
	case errors.Is(err, vacation.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), requestID)
	case errors.Is(err, vacation.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", err.Error(), requestID)
	case errors.Is(err, vacation.ErrInsufficientBalance):
		api.Fail(w, http.StatusBadRequest, "insufficient_balance", err.Error(), requestID)
	case errors.Is(err, vacation.ErrAlreadyProcessed):
		api.Fail(w, http.StatusBadRequest, "already_processed", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
