package loan

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type StoreIface interface {
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Account, error)
	PaymentsForPeriodTx(ctx context.Context, tx pgx.Tx, employeeID string, periodStart, periodEnd time.Time) ([]Payment, error)
	ApplyPaymentTx(ctx context.Context, tx pgx.Tx, pay Payment, periodStart, periodEnd time.Time) error
}
