package deduction

import (
	"campuspay/internal/domain/salary"
)

// EvaluateSalaryBased clamps the salary into the rule's [min, max] range
// (a bound participates only when set above zero) and applies the employee
// share percentage to the clamped figure.
func EvaluateSalaryBased(rule Rule, monthlySalary float64) float64 {
	clamped := monthlySalary
	if rule.MinSalary > 0 && clamped < rule.MinSalary {
		clamped = rule.MinSalary
	}
	if rule.MaxSalary > 0 && clamped > rule.MaxSalary {
		clamped = rule.MaxSalary
	}
	return salary.RoundTo(clamped*rule.EmployeeShare/100, 2)
}

// EvaluateFixed returns the rule's configured amount verbatim.
func EvaluateFixed(rule Rule) float64 {
	return rule.FixedAmount
}

// EvaluatePercentage applies a flat percentage of salary, used by the
// expanded/EVAT withholding rules.
func EvaluatePercentage(rule Rule, monthlySalary float64) float64 {
	return salary.RoundTo(monthlySalary*rule.RatePercent/100, 2)
}

// EvaluateTaxBracket finds the single bracket row covering the salary and
// computes baseTax plus the marginal rate on the excess. Zero or multiple
// matching brackets are configuration errors, never a silent zero tax.
func EvaluateTaxBracket(brackets []Rule, monthlySalary float64) (float64, error) {
	matched := -1
	for i, bracket := range brackets {
		if monthlySalary < bracket.MinSalary || monthlySalary > bracket.MaxSalary {
			continue
		}
		if matched >= 0 {
			return 0, ErrOverlappingBrackets
		}
		matched = i
	}
	if matched < 0 {
		return 0, ErrNoMatchingBracket
	}

	bracket := brackets[matched]
	excess := monthlySalary - bracket.ExcessOver
	if excess < 0 {
		excess = 0
	}
	return salary.RoundTo(bracket.BaseTax+excess*bracket.RatePercent/100, 2), nil
}

// Evaluate dispatches a non-bracket rule on its basis.
func Evaluate(rule Rule, monthlySalary float64) float64 {
	switch rule.Basis {
	case BasisFixed:
		return EvaluateFixed(rule)
	case BasisPercentage:
		return EvaluatePercentage(rule, monthlySalary)
	case BasisSalaryRange:
		return EvaluateSalaryBased(rule, monthlySalary)
	default:
		return 0
	}
}

// LateCharge computes the late deduction under the named policy: a fixed
// amount per late occurrence, or straight per-minute proration. Both
// policies ship because both exist in live rule sets; the caller picks one
// through configuration.
func LateCharge(policy string, lateMinutes, lateOccurrences int, lateRule Rule, ratePerMinute float64) float64 {
	if lateMinutes <= 0 {
		return 0
	}
	if policy == PolicyPerOccurrence {
		return salary.RoundTo(lateRule.FixedAmount*float64(lateOccurrences), 2)
	}
	return salary.RoundTo(float64(lateMinutes)*ratePerMinute, 2)
}
