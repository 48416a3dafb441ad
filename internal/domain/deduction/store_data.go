package deduction

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) RuleByCode(ctx context.Context, code string) (Rule, error) {
	var rule Rule
	err := s.DB.QueryRow(ctx, `
    SELECT code, basis, fixed_amount, rate_percent, min_salary, max_salary,
           base_tax, excess_over, employee_share, is_government, is_active
    FROM deduction_rules
    WHERE code = $1 AND is_active = true
  `, code).Scan(&rule.Code, &rule.Basis, &rule.FixedAmount, &rule.RatePercent,
		&rule.MinSalary, &rule.MaxSalary, &rule.BaseTax, &rule.ExcessOver,
		&rule.EmployeeShare, &rule.Government, &rule.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return Rule{}, fmt.Errorf("rule %s: %w", code, ErrRuleNotFound)
	}
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s lookup: %w", code, err)
	}
	return rule, nil
}

func (s *Store) ListTaxBrackets(ctx context.Context) ([]Rule, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT code, basis, fixed_amount, rate_percent, min_salary, max_salary,
           base_tax, excess_over, employee_share, is_government, is_active
    FROM deduction_rules
    WHERE basis = $1 AND is_active = true
    ORDER BY min_salary
  `, BasisTaxBracket)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brackets []Rule
	for rows.Next() {
		var rule Rule
		if err := rows.Scan(&rule.Code, &rule.Basis, &rule.FixedAmount, &rule.RatePercent,
			&rule.MinSalary, &rule.MaxSalary, &rule.BaseTax, &rule.ExcessOver,
			&rule.EmployeeShare, &rule.Government, &rule.Active); err != nil {
			return nil, err
		}
		brackets = append(brackets, rule)
	}
	return brackets, rows.Err()
}
