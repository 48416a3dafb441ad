package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type Service struct {
	store StoreIface
	sched Schedule
}

func NewService(store StoreIface, sched Schedule) *Service {
	return &Service{store: store, sched: sched}
}

// Summarize classifies an employee's punches over [start, end] without
// touching the daily_attendance cache. Every calendar day in the range gets
// a record, so days with no punches count as absences.
func (s *Service) Summarize(ctx context.Context, employeeID string, start, end time.Time) (RangeSummary, []DayRecord, error) {
	records, err := s.classifyRange(ctx, employeeID, start, end)
	if err != nil {
		return RangeSummary{}, nil, err
	}
	return SummarizeRange(records), records, nil
}

// Rebuild recomputes and persists daily_attendance rows for all active
// employees over [start, end]. Safe to re-run: classification is
// deterministic and the rows are upserted.
func (s *Service) Rebuild(ctx context.Context, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	employeeIDs, err := s.store.ListActiveEmployeeIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active employees: %w", err)
	}

	updated := 0
	for _, employeeID := range employeeIDs {
		records, err := s.classifyRange(ctx, employeeID, start, end)
		if err != nil {
			slog.Warn("attendance rebuild failed for employee", "employeeId", employeeID, "err", err)
			continue
		}
		for _, record := range records {
			if err := s.store.UpsertDayRecord(ctx, record); err != nil {
				return updated, fmt.Errorf("upsert day record for %s: %w", employeeID, err)
			}
			updated++
		}
	}
	return updated, nil
}

func (s *Service) DayRecords(ctx context.Context, employeeID string, start, end time.Time) ([]DayRecord, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	return s.store.ListDayRecords(ctx, employeeID, start, end)
}

func (s *Service) classifyRange(ctx context.Context, employeeID string, start, end time.Time) ([]DayRecord, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	punches, err := s.store.ListPunches(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list punches for %s: %w", employeeID, err)
	}

	byDay := map[string][]Punch{}
	for _, punch := range punches {
		key := punch.Timestamp.Format("2006-01-02")
		byDay[key] = append(byDay[key], punch)
	}

	var records []DayRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		records = append(records, Classify(employeeID, day, byDay[key], s.sched))
	}
	return records, nil
}
