package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campuspay/internal/domain/attendance"
	"campuspay/internal/domain/deduction"
	"campuspay/internal/domain/loan"
	"campuspay/internal/domain/salary"
)

// Options tune the batch behavior. Zero values fall back to sensible
// defaults in NewAggregator.
type Options struct {
	Divisors        salary.Divisors
	LatePolicy      string
	GrossProration  bool
	Workers         int
	EmployeeTimeout time.Duration
}

// Aggregator runs the per-employee payroll pipeline: classify attendance,
// derive rates, evaluate deduction rules, apply loan amortizations, then
// persist the run and its line items in a single transaction.
type Aggregator struct {
	store      StoreIface
	attendance *attendance.Service
	salaries   salary.StoreIface
	rules      deduction.StoreIface
	loans      loan.StoreIface
	opts       Options
}

func NewAggregator(store StoreIface, att *attendance.Service, salaries salary.StoreIface, rules deduction.StoreIface, loans loan.StoreIface, opts Options) *Aggregator {
	if opts.Divisors == (salary.Divisors{}) {
		opts.Divisors = salary.DefaultDivisors()
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.EmployeeTimeout <= 0 {
		opts.EmployeeTimeout = 30 * time.Second
	}
	return &Aggregator{
		store:      store,
		attendance: att,
		salaries:   salaries,
		rules:      rules,
		loans:      loans,
		opts:       opts,
	}
}

// ProcessBatch computes payroll for every active employee over the period.
// One employee's failure never aborts the batch; each failure lands in the
// result with its reason.
func (a *Aggregator) ProcessBatch(ctx context.Context, periodStart, periodEnd time.Time, processedBy string) (BatchResult, error) {
	if periodEnd.Before(periodStart) {
		return BatchResult{}, ErrInvalidPeriod
	}

	employees, err := a.store.ListActiveEmployees(ctx)
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{
		BatchID:     uuid.NewString(),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Total:       len(employees),
		StartedAt:   time.Now().UTC(),
	}

	jobs := make(chan Employee)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < a.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for emp := range jobs {
				empCtx, cancel := context.WithTimeout(ctx, a.opts.EmployeeTimeout)
				err := a.ProcessEmployee(empCtx, emp, periodStart, periodEnd, processedBy)
				cancel()

				mu.Lock()
				switch {
				case err == nil:
					result.Succeeded++
				case errors.Is(err, salary.ErrMissingReference):
					result.Skipped++
					result.Skips = append(result.Skips, Failure{EmployeeID: emp.ID, Reason: err.Error()})
				default:
					result.Failed++
					result.Failures = append(result.Failures, Failure{EmployeeID: emp.ID, Reason: err.Error()})
				}
				mu.Unlock()

				if err != nil {
					slog.Warn("payroll processing failed for employee",
						"batchId", result.BatchID,
						"employeeId", emp.ID,
						"err", err)
				}
			}
		}()
	}

	for _, emp := range employees {
		jobs <- emp
	}
	close(jobs)
	wg.Wait()

	result.CompletedAt = time.Now().UTC()
	return result, nil
}

// ProcessEmployee runs the full pipeline for one employee and persists the
// outcome. Reprocessing the same period overwrites the run, replaces its
// line items and never decrements a loan balance twice.
func (a *Aggregator) ProcessEmployee(ctx context.Context, emp Employee, periodStart, periodEnd time.Time, processedBy string) error {
	sum, _, err := a.attendance.Summarize(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("attendance: %w", err)
	}

	ref, err := a.salaries.ReferenceForEmployee(ctx, emp.ID)
	if err != nil {
		return fmt.Errorf("salary reference: %w", err)
	}
	rates := salary.DeriveRates(ref.MonthlySalary, a.opts.Divisors)

	var warnings []string

	lateCharge, warn := a.lateCharge(ctx, sum, rates)
	warnings = append(warnings, warn...)

	items := AttendanceItems(sum, rates, lateCharge, a.opts.GrossProration)

	govItems, warn, err := a.governmentItems(ctx, emp.EmploymentType, ref.MonthlySalary)
	if err != nil {
		return err
	}
	items = append(items, govItems...)
	warnings = append(warnings, warn...)

	gross := GrossPay(ref.MonthlySalary, sum, rates, a.opts.GrossProration)

	tx, err := a.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	loanItems, err := a.loanItems(ctx, tx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return err
	}
	items = append(items, loanItems...)

	net, total, clamped := NetPay(gross, items)
	if clamped {
		warnings = append(warnings, WarningNegativeNet)
	}

	runID, err := a.store.UpsertRunTx(ctx, tx, Run{
		EmployeeID:      emp.ID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		GrossPay:        gross,
		TotalDeductions: total,
		NetPay:          net,
		ProcessedBy:     processedBy,
		Warnings:        warnings,
	})
	if err != nil {
		return err
	}
	if err := a.store.ReplaceLineItemsTx(ctx, tx, runID, items); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (a *Aggregator) lateCharge(ctx context.Context, sum attendance.RangeSummary, rates salary.Rates) (float64, []string) {
	if sum.TotalLateMinutes <= 0 {
		return 0, nil
	}

	var lateRule deduction.Rule
	if a.opts.LatePolicy == deduction.PolicyPerOccurrence {
		rule, err := a.rules.RuleByCode(ctx, deduction.CodeLate)
		if err != nil {
			if errors.Is(err, deduction.ErrRuleNotFound) {
				return 0, []string{WarningMissingRule + ":" + deduction.CodeLate}
			}
			slog.Warn("late rule lookup failed", "err", err)
			return 0, []string{WarningMissingRule + ":" + deduction.CodeLate}
		}
		lateRule = rule
	}
	return deduction.LateCharge(a.opts.LatePolicy, sum.TotalLateMinutes, sum.LateOccurrences, lateRule, rates.RatePerMinute), nil
}

// governmentItems evaluates the statutory rules for the employment type,
// then the withholding tax table where it applies. A rule missing from the
// table charges nothing but surfaces as a warning; a salary with no
// matching bracket, or a broken bracket table, fails the employee outright
// rather than defaulting to zero tax.
func (a *Aggregator) governmentItems(ctx context.Context, employmentType string, monthlySalary float64) ([]LineItem, []string, error) {
	var items []LineItem
	var warnings []string

	for _, code := range deduction.RuleCodesFor(employmentType) {
		rule, err := a.rules.RuleByCode(ctx, code)
		if errors.Is(err, deduction.ErrRuleNotFound) {
			warnings = append(warnings, WarningMissingRule+":"+code)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("rule %s: %w", code, err)
		}
		amount := deduction.Evaluate(rule, monthlySalary)
		if amount > 0 {
			items = append(items, LineItem{Code: code, Description: rule.Code + " contribution", Amount: amount})
		}
	}

	if !deduction.WithholdsBracketTax(employmentType) {
		return items, warnings, nil
	}

	brackets, err := a.rules.ListTaxBrackets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("tax brackets: %w", err)
	}
	tax, err := deduction.EvaluateTaxBracket(brackets, monthlySalary)
	if err != nil {
		return nil, nil, fmt.Errorf("withholding tax: %w", err)
	}
	if tax > 0 {
		items = append(items, LineItem{Code: ItemWTax, Description: "Withholding tax", Amount: tax})
	}
	return items, warnings, nil
}

// loanItems applies one amortization per active loan inside the caller's
// transaction. A payment already recorded for the period is reused as-is,
// so reruns charge the employee the same amount without touching the
// balance again.
func (a *Aggregator) loanItems(ctx context.Context, tx pgx.Tx, employeeID string, periodStart, periodEnd time.Time) ([]LineItem, error) {
	recorded, err := a.loans.PaymentsForPeriodTx(ctx, tx, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	paid := make(map[string]bool, len(recorded))
	var items []LineItem
	for _, pay := range recorded {
		paid[pay.LoanID] = true
		if pay.Amount > 0 {
			items = append(items, loanLineItem(pay))
		}
	}

	accounts, err := a.loans.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("loans: %w", err)
	}
	for _, acct := range accounts {
		if paid[acct.ID] {
			continue
		}

		pay := loan.NextPayment(acct)
		if pay.Amount <= 0 {
			continue
		}
		if err := a.loans.ApplyPaymentTx(ctx, tx, pay, periodStart, periodEnd); err != nil {
			return nil, err
		}
		items = append(items, loanLineItem(pay))
	}
	return items, nil
}

func loanLineItem(pay loan.Payment) LineItem {
	return LineItem{
		Code:        ItemLoanPrefix + pay.LoanType,
		Description: fmt.Sprintf("%s loan amortization", pay.LoanType),
		Amount:      pay.Amount,
	}
}

func (a *Aggregator) Runs(ctx context.Context, periodStart, periodEnd time.Time) ([]Run, error) {
	if periodEnd.Before(periodStart) {
		return nil, ErrInvalidPeriod
	}
	return a.store.ListRuns(ctx, periodStart, periodEnd)
}

func (a *Aggregator) Run(ctx context.Context, runID string) (Run, []LineItem, error) {
	run, err := a.store.RunByID(ctx, runID)
	if err != nil {
		return Run{}, nil, err
	}
	items, err := a.store.ListLineItems(ctx, runID)
	if err != nil {
		return Run{}, nil, err
	}
	return run, items, nil
}
