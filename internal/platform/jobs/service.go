package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	JobPayrollProcess    = "payroll_process"
	JobAttendanceRebuild = "attendance_rebuild"
)

const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

var ErrQueueFull = errors.New("job queue full")
var ErrNotFound = errors.New("job run not found")

// Run is a row in job_runs, the audit trail for background work.
type Run struct {
	ID          string          `json:"id"`
	JobType     string          `json:"jobType"`
	Status      string          `json:"status"`
	Details     json.RawMessage `json:"details,omitempty"`
	Error       string          `json:"error,omitempty"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

type Service struct {
	DB    *pgxpool.Pool
	queue chan job
}

type job struct {
	RunID string
	Type  string
	Run   func(context.Context) (any, error)
}

func New(db *pgxpool.Pool) *Service {
	return &Service{
		DB:    db,
		queue: make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

// Enqueue records a queued job run and hands the work to the background
// worker. The returned run id lets callers poll for the outcome.
func (s *Service) Enqueue(ctx context.Context, jobType string, run func(context.Context) (any, error)) (string, error) {
	runID, err := s.createRun(ctx, jobType)
	if err != nil {
		return "", err
	}
	select {
	case s.queue <- job{RunID: runID, Type: jobType, Run: run}:
		return runID, nil
	default:
		slog.Warn("job queue full", "jobType", jobType)
		s.finishRun(ctx, runID, StatusFailed, nil, ErrQueueFull)
		return "", ErrQueueFull
	}
}

// RunNow executes the job inline, still recording it in job_runs.
func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (string, any, error) {
	runID, err := s.createRun(ctx, jobType)
	if err != nil {
		return "", nil, err
	}
	details, err := s.execute(ctx, job{RunID: runID, Type: jobType, Run: run})
	return runID, details, err
}

func (s *Service) Get(ctx context.Context, runID string) (Run, error) {
	var run Run
	err := s.DB.QueryRow(ctx, `
    SELECT id, job_type, status, details_json, COALESCE(error, ''), started_at, completed_at
    FROM job_runs
    WHERE id = $1
  `, runID).Scan(&run.ID, &run.JobType, &run.Status, &run.Details, &run.Error, &run.StartedAt, &run.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("load job run: %w", err)
	}
	return run, nil
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.execute(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "runId", j.RunID, "err", err)
			}
		}
	}
}

func (s *Service) createRun(ctx context.Context, jobType string) (string, error) {
	var runID string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1,$2)
    RETURNING id
  `, jobType, StatusQueued).Scan(&runID)
	if err != nil {
		return "", fmt.Errorf("insert job run: %w", err)
	}
	return runID, nil
}

func (s *Service) execute(ctx context.Context, j job) (any, error) {
	if _, err := s.DB.Exec(ctx, "UPDATE job_runs SET status = $1 WHERE id = $2", StatusRunning, j.RunID); err != nil {
		slog.Warn("job run update failed", "runId", j.RunID, "err", err)
	}

	details, err := j.Run(ctx)
	status := StatusCompleted
	if err != nil {
		status = StatusFailed
	}
	s.finishRun(ctx, j.RunID, status, details, err)
	return details, err
}

func (s *Service) finishRun(ctx context.Context, runID, status string, details any, runErr error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		slog.Warn("job details marshal failed", "err", err)
		detailsJSON = []byte("{}")
	}
	errText := ""
	if runErr != nil {
		errText = runErr.Error()
	}
	if _, err := s.DB.Exec(ctx, `
    UPDATE job_runs
    SET status = $1, details_json = $2, error = NULLIF($3, ''), completed_at = now()
    WHERE id = $4
  `, status, detailsJSON, errText, runID); err != nil {
		slog.Warn("job run update failed", "runId", runID, "err", err)
	}
}
