package attendancehandler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campuspay/internal/domain/attendance"
	"campuspay/internal/platform/jobs"
	"campuspay/internal/transport/http/api"
	"campuspay/internal/transport/http/middleware"
	"campuspay/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
	Jobs    *jobs.Service
}

func NewHandler(service *attendance.Service, jobsSvc *jobs.Service) *Handler {
	return &Handler{Service: service, Jobs: jobsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/rebuild", h.handleRebuild)
		r.Get("/daily", h.handleDaily)
	})
}

type rebuildRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *Handler) handleRebuild(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req rebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	v := shared.NewValidator()
	start, _ := v.Date("startDate", req.StartDate)
	end, _ := v.Date("endDate", req.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if !v.Valid() {
		api.Fail(w, http.StatusBadRequest, "validation_failed", v.Message(), reqID)
		return
	}

	jobID, details, err := h.Jobs.RunNow(r.Context(), jobs.JobAttendanceRebuild, func(ctx context.Context) (any, error) {
		updated, err := h.Service.Rebuild(ctx, start, end)
		return map[string]any{"updated": updated}, err
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_rebuild_failed", "failed to rebuild attendance", reqID)
		return
	}
	api.Success(w, map[string]any{"jobId": jobID, "result": details}, reqID)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID := r.URL.Query().Get("employeeId")
	v := shared.NewValidator()
	v.Required("employeeId", employeeID, "is required")
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if !v.Valid() {
		api.Fail(w, http.StatusBadRequest, "validation_failed", v.Message(), reqID)
		return
	}

	records, err := h.Service.DayRecords(r.Context(), employeeID, start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance records", reqID)
		return
	}
	api.Success(w, records, reqID)
}
