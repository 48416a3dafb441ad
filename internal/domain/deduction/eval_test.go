package deduction

import (
	"errors"
	"testing"
)

func TestEvaluateSalaryBasedClampsRange(t *testing.T) {
	rule := Rule{Basis: BasisSalaryRange, MinSalary: 4000, MaxSalary: 30000, EmployeeShare: 4.5}

	if got := EvaluateSalaryBased(rule, 20000); got != 900.00 {
		t.Fatalf("expected 900.00 within range, got %v", got)
	}
	if got := EvaluateSalaryBased(rule, 50000); got != 1350.00 {
		t.Fatalf("expected max clamp 1350.00, got %v", got)
	}
	if got := EvaluateSalaryBased(rule, 1000); got != 180.00 {
		t.Fatalf("expected min clamp 180.00, got %v", got)
	}
}

func TestEvaluateSalaryBasedIgnoresUnsetBounds(t *testing.T) {
	rule := Rule{Basis: BasisSalaryRange, EmployeeShare: 2}
	if got := EvaluateSalaryBased(rule, 100000); got != 2000.00 {
		t.Fatalf("expected unbounded 2000.00, got %v", got)
	}
}

func TestEvaluateFixed(t *testing.T) {
	rule := Rule{Basis: BasisFixed, FixedAmount: 100}
	if got := EvaluateFixed(rule); got != 100 {
		t.Fatalf("expected fixed 100, got %v", got)
	}
}

func TestEvaluateTaxBracket(t *testing.T) {
	brackets := []Rule{
		{Basis: BasisTaxBracket, MinSalary: 0, MaxSalary: 20833, BaseTax: 0, RatePercent: 0, ExcessOver: 0},
		{Basis: BasisTaxBracket, MinSalary: 20833.01, MaxSalary: 33332, BaseTax: 0, RatePercent: 15, ExcessOver: 20833},
		{Basis: BasisTaxBracket, MinSalary: 33332.01, MaxSalary: 66666, BaseTax: 1875, RatePercent: 20, ExcessOver: 33333},
	}

	tax, err := EvaluateTaxBracket(brackets, 25000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tax != 625.05 {
		t.Fatalf("expected tax 625.05, got %v", tax)
	}

	tax, err = EvaluateTaxBracket(brackets, 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tax != 0 {
		t.Fatalf("expected zero tax in lowest bracket, got %v", tax)
	}
}

func TestEvaluateTaxBracketNoMatch(t *testing.T) {
	brackets := []Rule{
		{Basis: BasisTaxBracket, MinSalary: 20833.01, MaxSalary: 33332, RatePercent: 15, ExcessOver: 20833},
	}
	if _, err := EvaluateTaxBracket(brackets, 15000); !errors.Is(err, ErrNoMatchingBracket) {
		t.Fatalf("expected ErrNoMatchingBracket, got %v", err)
	}
}

func TestEvaluateTaxBracketOverlap(t *testing.T) {
	brackets := []Rule{
		{Basis: BasisTaxBracket, MinSalary: 0, MaxSalary: 30000, RatePercent: 10},
		{Basis: BasisTaxBracket, MinSalary: 20000, MaxSalary: 40000, RatePercent: 15},
	}
	if _, err := EvaluateTaxBracket(brackets, 25000); !errors.Is(err, ErrOverlappingBrackets) {
		t.Fatalf("expected ErrOverlappingBrackets, got %v", err)
	}
}

func TestLateChargePolicies(t *testing.T) {
	lateRule := Rule{Code: CodeLate, Basis: BasisFixed, FixedAmount: 50}

	if got := LateCharge("per-minute", 30, 3, lateRule, 2.5); got != 75.00 {
		t.Fatalf("expected per-minute charge 75.00, got %v", got)
	}
	if got := LateCharge("per-occurrence", 30, 3, lateRule, 2.5); got != 150.00 {
		t.Fatalf("expected per-occurrence charge 150.00, got %v", got)
	}
	if got := LateCharge("per-minute", 0, 0, lateRule, 2.5); got != 0 {
		t.Fatalf("expected no charge without late minutes, got %v", got)
	}
}

func TestRuleCodesForEmploymentType(t *testing.T) {
	regular := RuleCodesFor(EmploymentRegular)
	if len(regular) != 3 || regular[0] != CodeSSS {
		t.Fatalf("unexpected regular rule set: %v", regular)
	}
	instructor := RuleCodesFor(EmploymentInstructor)
	if len(instructor) != 2 || instructor[0] != CodeEVAT {
		t.Fatalf("unexpected instructor rule set: %v", instructor)
	}
	if WithholdsBracketTax(EmploymentInstructor) {
		t.Fatal("instructor positions must not use the bracket table")
	}
	if !WithholdsBracketTax(EmploymentRegular) {
		t.Fatal("regular employees must use the bracket table")
	}
}
