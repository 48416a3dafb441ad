package loan

// NextPayment computes the amount due for one period on an active
// account. The payment never exceeds the remaining balance, and an
// account whose balance reaches zero is marked completed.
func NextPayment(acct Account) Payment {
	p := Payment{
		LoanID:    acct.ID,
		LoanType:  acct.LoanType,
		NewStatus: acct.Status,
	}
	if acct.Status != StatusActive || acct.Balance <= 0 {
		p.NewBalance = acct.Balance
		return p
	}

	amount := acct.MonthlyAmortization
	if amount > acct.Balance {
		amount = acct.Balance
	}

	p.Amount = amount
	p.NewBalance = acct.Balance - amount
	if p.NewBalance <= 0 {
		p.NewBalance = 0
		p.NewStatus = StatusCompleted
	}
	return p
}
