package payroll

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type StoreIface interface {
	ListActiveEmployees(ctx context.Context) ([]Employee, error)
	BeginTx(ctx context.Context) (pgx.Tx, error)
	UpsertRunTx(ctx context.Context, tx pgx.Tx, run Run) (string, error)
	ReplaceLineItemsTx(ctx context.Context, tx pgx.Tx, runID string, items []LineItem) error
	ListRuns(ctx context.Context, periodStart, periodEnd time.Time) ([]Run, error)
	RunByID(ctx context.Context, runID string) (Run, error)
	ListLineItems(ctx context.Context, runID string) ([]LineItem, error)
}
