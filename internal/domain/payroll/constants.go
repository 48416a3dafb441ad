package payroll

// Line item codes for attendance-driven deductions. Government and tax
// items reuse the deduction rule codes; loan items carry the ItemLoanPrefix
// followed by the loan type.
const (
	ItemLate       = "LATE"
	ItemAbsent     = "ABSENT"
	ItemHalfDay    = "HALFDAY"
	ItemUndertime  = "UNDERTIME"
	ItemWTax       = "WTAX"
	ItemLoanPrefix = "LOAN:"
)

// Warning keys recorded on payroll_runs.warnings_json. A missing rule
// warning is suffixed with the rule code, e.g. "missing_rule:SSS".
const (
	WarningNegativeNet = "negative_net_clamped"
	WarningMissingRule = "missing_rule"
)
