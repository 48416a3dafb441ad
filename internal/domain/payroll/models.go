package payroll

import "time"

type Employee struct {
	ID                string `json:"id"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	EmploymentType    string `json:"employmentType"`
	SalaryReferenceID string `json:"salaryReferenceId"`
	Status            string `json:"status"`
}

// Run is one employee's computed payroll for a period. Reprocessing the
// same period overwrites the row in place, keyed on
// (employee_id, period_start, period_end).
type Run struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	PeriodStart     time.Time `json:"periodStart"`
	PeriodEnd       time.Time `json:"periodEnd"`
	GrossPay        float64   `json:"grossPay"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetPay          float64   `json:"netPay"`
	ProcessedBy     string    `json:"processedBy"`
	Warnings        []string  `json:"warnings,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type LineItem struct {
	ID          string  `json:"id,omitempty"`
	RunID       string  `json:"runId,omitempty"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Failure struct {
	EmployeeID string `json:"employeeId"`
	Reason     string `json:"reason"`
}

// BatchResult summarizes one ProcessBatch invocation. Per-employee
// failures are isolated, so Succeeded+Failed+Skipped always equals Total.
// An employee with no salary reference is skipped rather than failed; the
// distinction matters to payroll staff chasing data entry gaps.
type BatchResult struct {
	BatchID     string    `json:"batchId"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	Total       int       `json:"total"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	Skipped     int       `json:"skipped"`
	Failures    []Failure `json:"failures,omitempty"`
	Skips       []Failure `json:"skips,omitempty"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
}
