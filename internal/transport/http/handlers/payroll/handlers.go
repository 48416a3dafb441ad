package payrollhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campuspay/internal/domain/payroll"
	"campuspay/internal/platform/jobs"
	"campuspay/internal/platform/metrics"
	"campuspay/internal/transport/http/api"
	"campuspay/internal/transport/http/middleware"
	"campuspay/internal/transport/http/shared"
)

type Handler struct {
	Aggregator *payroll.Aggregator
	Jobs       *jobs.Service
	Metrics    *metrics.Collector
}

func NewHandler(agg *payroll.Aggregator, jobsSvc *jobs.Service, collector *metrics.Collector) *Handler {
	return &Handler{Aggregator: agg, Jobs: jobsSvc, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/process", h.handleProcess)
		r.Get("/jobs/{jobID}", h.handleJobStatus)
		r.Get("/runs", h.handleListRuns)
		r.Get("/runs/{runID}/items", h.handleRunItems)
	})
}

type processRequest struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	ProcessedBy string `json:"processedBy"`
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid request body", reqID)
		return
	}

	v := shared.NewValidator()
	start, _ := v.Date("startDate", req.StartDate)
	end, _ := v.Date("endDate", req.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	v.Required("processedBy", req.ProcessedBy, "is required")
	if !v.Valid() {
		api.Fail(w, http.StatusBadRequest, "validation_failed", v.Message(), reqID)
		return
	}

	run := func(ctx context.Context) (any, error) {
		result, err := h.Aggregator.ProcessBatch(ctx, start, end, req.ProcessedBy)
		if err != nil {
			return nil, err
		}
		if h.Metrics != nil {
			h.Metrics.RecordBatch(result.Succeeded, result.Failed)
		}
		return result, nil
	}

	if r.URL.Query().Get("sync") == "1" {
		jobID, details, err := h.Jobs.RunNow(r.Context(), jobs.JobPayrollProcess, run)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "payroll_process_failed", err.Error(), reqID)
			return
		}
		api.Success(w, map[string]any{"jobId": jobID, "result": details}, reqID)
		return
	}

	jobID, err := h.Jobs.Enqueue(r.Context(), jobs.JobPayrollProcess, run)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, jobs.ErrQueueFull) {
			status = http.StatusServiceUnavailable
		}
		api.Fail(w, status, "payroll_enqueue_failed", "failed to queue payroll processing", reqID)
		return
	}
	api.Accepted(w, map[string]any{"jobId": jobID, "periodStart": start.Format("2006-01-02"), "periodEnd": end.Format("2006-01-02")}, reqID)
}

func (h *Handler) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	run, err := h.Jobs.Get(r.Context(), chi.URLParam(r, "jobID"))
	if errors.Is(err, jobs.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "job_not_found", "job run not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "job_lookup_failed", "failed to load job run", reqID)
		return
	}
	api.Success(w, run, reqID)
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if !v.Valid() {
		api.Fail(w, http.StatusBadRequest, "validation_failed", v.Message(), reqID)
		return
	}

	runs, err := h.Aggregator.Runs(r.Context(), start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "runs_list_failed", "failed to list payroll runs", reqID)
		return
	}
	api.Success(w, runs, reqID)
}

func (h *Handler) handleRunItems(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	run, items, err := h.Aggregator.Run(r.Context(), chi.URLParam(r, "runID"))
	if errors.Is(err, payroll.ErrRunNotFound) {
		api.Fail(w, http.StatusNotFound, "run_not_found", "payroll run not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "run_lookup_failed", "failed to load payroll run", reqID)
		return
	}
	api.Success(w, map[string]any{"run": run, "items": items}, reqID)
}
