package attendance

import (
	"context"
	"time"
)

type StoreIface interface {
	ListPunches(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error)
	ListDayRecords(ctx context.Context, employeeID string, start, end time.Time) ([]DayRecord, error)
	UpsertDayRecord(ctx context.Context, record DayRecord) error
	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
}
