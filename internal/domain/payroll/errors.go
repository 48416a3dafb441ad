package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("period end before period start")
	ErrRunNotFound   = errors.New("payroll run not found")
)
