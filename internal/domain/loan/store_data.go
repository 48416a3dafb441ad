package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListActiveByEmployee(ctx context.Context, employeeID string) ([]Account, error) {
	rows, err := s.DB.Query(ctx, `
        SELECT id, employee_id, loan_type, loan_amount, monthly_amortization, balance, status
        FROM loan_accounts
        WHERE employee_id = $1 AND status = $2
        ORDER BY created_at`, employeeID, StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active loans: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.LoanType, &a.LoanAmount, &a.MonthlyAmortization, &a.Balance, &a.Status); err != nil {
			return nil, fmt.Errorf("scan loan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// PaymentsForPeriodTx returns the payments already recorded for the
// employee's loans in the given period. A completed loan still shows up
// here, so reprocessing a period keeps charging the payment that closed it.
func (s *Store) PaymentsForPeriodTx(ctx context.Context, tx pgx.Tx, employeeID string, periodStart, periodEnd time.Time) ([]Payment, error) {
	rows, err := tx.Query(ctx, `
        SELECT lp.loan_id, la.loan_type, lp.amount, lp.balance_after
        FROM loan_payments lp
        JOIN loan_accounts la ON la.id = lp.loan_id
        WHERE la.employee_id = $1 AND lp.period_start = $2 AND lp.period_end = $3`,
		employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("list loan payments: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.LoanID, &p.LoanType, &p.Amount, &p.NewBalance); err != nil {
			return nil, fmt.Errorf("scan loan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ApplyPaymentTx records the payment and decrements the balance in one
// transaction. The UPDATE is conditional on the account still being
// active with sufficient balance, so a concurrent run cannot decrement
// the same account twice.
func (s *Store) ApplyPaymentTx(ctx context.Context, tx pgx.Tx, pay Payment, periodStart, periodEnd time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE loan_accounts
        SET balance = balance - $2, status = $3, updated_at = now()
        WHERE id = $1 AND status = $4 AND balance >= $2`,
		pay.LoanID, pay.Amount, pay.NewStatus, StatusActive)
	if err != nil {
		return fmt.Errorf("update loan balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("loan %s: %w", pay.LoanID, ErrUpdateConflict)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO loan_payments (loan_id, period_start, period_end, amount, balance_after)
        VALUES ($1, $2, $3, $4, $5)`,
		pay.LoanID, periodStart, periodEnd, pay.Amount, pay.NewBalance)
	if err != nil {
		return fmt.Errorf("record loan payment: %w", err)
	}
	return nil
}
