package payroll

import (
	"context"
	"encoding/json"
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

func (s *Store) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return s.DB.Begin(ctx)
}

func (s *Store) ListActiveEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name, last_name, employment_type, COALESCE(salary_reference_id::text, ''), status
    FROM employees
    WHERE status = 'active'
    ORDER BY last_name, first_name
  `)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.EmploymentType, &emp.SalaryReferenceID, &emp.Status); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) UpsertRunTx(ctx context.Context, tx pgx.Tx, run Run) (string, error) {
	warningsJSON, err := json.Marshal(run.Warnings)
	if err != nil {
		warningsJSON = []byte("[]")
	}
	var id string
	err = tx.QueryRow(ctx, `
    INSERT INTO payroll_runs (employee_id, period_start, period_end, gross_pay, total_deductions, net_pay, processed_by, warnings_json)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    ON CONFLICT (employee_id, period_start, period_end)
    DO UPDATE SET gross_pay = EXCLUDED.gross_pay,
                  total_deductions = EXCLUDED.total_deductions,
                  net_pay = EXCLUDED.net_pay,
                  processed_by = EXCLUDED.processed_by,
                  warnings_json = EXCLUDED.warnings_json,
                  updated_at = now()
    RETURNING id
  `, run.EmployeeID, run.PeriodStart, run.PeriodEnd, run.GrossPay, run.TotalDeductions, run.NetPay, run.ProcessedBy, warningsJSON).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert payroll run: %w", err)
	}
	return id, nil
}

// ReplaceLineItemsTx deletes and reinserts the run's line items so a
// reprocessed period never accumulates stale rows.
func (s *Store) ReplaceLineItemsTx(ctx context.Context, tx pgx.Tx, runID string, items []LineItem) error {
	if _, err := tx.Exec(ctx, "DELETE FROM deduction_line_items WHERE run_id = $1", runID); err != nil {
		return fmt.Errorf("clear line items: %w", err)
	}
	for _, item := range items {
		_, err := tx.Exec(ctx, `
      INSERT INTO deduction_line_items (run_id, code, description, amount)
      VALUES ($1,$2,$3,$4)
    `, runID, item.Code, item.Description, item.Amount)
		if err != nil {
			return fmt.Errorf("insert line item %s: %w", item.Code, err)
		}
	}
	return nil
}

func (s *Store) ListRuns(ctx context.Context, periodStart, periodEnd time.Time) ([]Run, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, period_start, period_end, gross_pay, total_deductions, net_pay, processed_by, warnings_json, created_at, updated_at
    FROM payroll_runs
    WHERE period_start = $1 AND period_end = $2
    ORDER BY employee_id
  `, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *Store) RunByID(ctx context.Context, runID string) (Run, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, period_start, period_end, gross_pay, total_deductions, net_pay, processed_by, warnings_json, created_at, updated_at
    FROM payroll_runs
    WHERE id = $1
  `, runID)
	if err != nil {
		return Run{}, fmt.Errorf("load payroll run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Run{}, fmt.Errorf("load payroll run: %w", err)
		}
		return Run{}, ErrRunNotFound
	}
	return scanRun(rows)
}

func (s *Store) ListLineItems(ctx context.Context, runID string) ([]LineItem, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, run_id, code, description, amount
    FROM deduction_line_items
    WHERE run_id = $1
    ORDER BY code
  `, runID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.ID, &item.RunID, &item.Code, &item.Description, &item.Amount); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanRun(rows pgx.Rows) (Run, error) {
	var run Run
	var warningsJSON []byte
	if err := rows.Scan(&run.ID, &run.EmployeeID, &run.PeriodStart, &run.PeriodEnd, &run.GrossPay, &run.TotalDeductions, &run.NetPay, &run.ProcessedBy, &warningsJSON, &run.CreatedAt, &run.UpdatedAt); err != nil {
		return Run{}, fmt.Errorf("scan payroll run: %w", err)
	}
	if len(warningsJSON) > 0 {
		if err := json.Unmarshal(warningsJSON, &run.Warnings); err != nil {
			run.Warnings = nil
		}
	}
	return run, nil
}
