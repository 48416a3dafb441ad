package loan

const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusStopped   = "Stopped"
)

type Account struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employeeId"`
	LoanType            string  `json:"loanType"`
	LoanAmount          float64 `json:"loanAmount"`
	MonthlyAmortization float64 `json:"monthlyAmortization"`
	Balance             float64 `json:"balance"`
	Status              string  `json:"status"`
}

// Payment is the outcome of applying one period's amortization.
type Payment struct {
	LoanID     string  `json:"loanId"`
	LoanType   string  `json:"loanType"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"newBalance"`
	NewStatus  string  `json:"newStatus"`
}
