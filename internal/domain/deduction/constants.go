package deduction

// Rule basis values, matching the deduction_rules.basis column.
const (
	BasisFixed       = "fixed"
	BasisPercentage  = "percentage"
	BasisSalaryRange = "salary-range"
	BasisTaxBracket  = "tax-bracket"
)

// Well-known rule codes. Government contributions for regular employees,
// expanded/EVAT withholding for contractual and instructor positions.
const (
	CodeSSS        = "SSS"
	CodePhilHealth = "PHILHEALTH"
	CodePagIBIG    = "PAGIBIG"
	CodeWTax       = "WTAX"
	CodeEVAT       = "EVAT"
	CodeExpanded   = "EXPANDED"
	CodeLate       = "LATE"
)

// Late policy names, selected through configuration.
const (
	PolicyPerMinute     = "per-minute"
	PolicyPerOccurrence = "per-occurrence"
)

// Employment types, stored on the employee row. An explicit tag decided at
// data entry, never re-derived from the position name.
const (
	EmploymentRegular     = "regular"
	EmploymentContractual = "contractual"
	EmploymentInstructor  = "instructor"
)

// RuleCodesFor returns the government rule codes charged against an
// employment type. Tax brackets are evaluated separately.
func RuleCodesFor(employmentType string) []string {
	switch employmentType {
	case EmploymentContractual, EmploymentInstructor:
		return []string{CodeEVAT, CodeExpanded}
	default:
		return []string{CodeSSS, CodePhilHealth, CodePagIBIG}
	}
}

// WithholdsBracketTax reports whether the employment type is subject to the
// progressive withholding-tax table rather than flat expanded/EVAT rates.
func WithholdsBracketTax(employmentType string) bool {
	switch employmentType {
	case EmploymentContractual, EmploymentInstructor:
		return false
	default:
		return true
	}
}
