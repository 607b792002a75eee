package reportshandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vacations/internal/domain/reports"
	"vacations/internal/domain/vacation"
	"vacations/internal/transport/http/api"
	"vacations/internal/transport/http/middleware"
)

type Handler struct {
	Service   *reports.Service
	Vacations *vacation.Service
}

func NewHandler(service *reports.Service, vacations *vacation.Service) *Handler {
	return &Handler{Service: service, Vacations: vacations}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/managers/{managerID}/overview", h.handleOverview)
	r.Get("/managers/{managerID}/overview/export", h.handleOverviewExport)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	api.Success(w, h.Service.EmployeeOverviews(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOverviewExport(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	data, err := h.Service.OverviewPDF()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render overview", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="vacation-overview.pdf"`)
	_, _ = w.Write(data)
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) bool {
	managerID, err := strconv.Atoi(chi.URLParam(r, "managerID"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "identifier must be an integer", middleware.GetRequestID(r.Context()))
		return false
	}
	if !h.Vacations.IsManager(managerID) {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "not a manager", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}
