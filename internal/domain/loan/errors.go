package loan

import "errors"

var (
	ErrNotFound = errors.New("loan account not found")
	// ErrUpdateConflict is returned when the conditional balance update
	// matched no row, meaning the account changed under us or the
	// balance no longer covers the payment.
	ErrUpdateConflict = errors.New("loan balance update conflict")
	// ErrAlreadyApplied is returned when a payment for the same loan
	// and period has already been recorded.
	ErrAlreadyApplied = errors.New("loan payment already applied for period")
)
