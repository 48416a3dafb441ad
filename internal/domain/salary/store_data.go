package salary

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

func (s *Store) ReferenceForEmployee(ctx context.Context, employeeID string) (Reference, error) {
	var ref Reference
	err := s.DB.QueryRow(ctx, `
    SELECT sr.id, sr.monthly_salary, sr.rate_per_day, sr.half_day_rate,
           sr.rate_per_minute, sr.rate_per_unit, e.employment_type
    FROM salary_references sr
    JOIN employees e ON e.salary_reference_id = sr.id
    WHERE e.id = $1
  `, employeeID).Scan(&ref.ID, &ref.MonthlySalary, &ref.RatePerDay, &ref.HalfDayRate,
		&ref.RatePerMinute, &ref.RatePerUnit, &ref.EmploymentType)
	if errors.Is(err, pgx.ErrNoRows) {
		return Reference{}, ErrMissingReference
	}
	if err != nil {
		return Reference{}, fmt.Errorf("salary reference lookup for %s: %w", employeeID, err)
	}
	return ref, nil
}

func (s *Store) SaveReference(ctx context.Context, ref Reference) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO salary_references (id, monthly_salary, rate_per_day, half_day_rate, rate_per_minute, rate_per_unit)
    VALUES ($1,$2,$3,$4,$5,$6)
    ON CONFLICT (id)
    DO UPDATE SET monthly_salary = EXCLUDED.monthly_salary,
                  rate_per_day = EXCLUDED.rate_per_day,
                  half_day_rate = EXCLUDED.half_day_rate,
                  rate_per_minute = EXCLUDED.rate_per_minute,
                  rate_per_unit = EXCLUDED.rate_per_unit
  `, ref.ID, ref.MonthlySalary, ref.RatePerDay, ref.HalfDayRate, ref.RatePerMinute, ref.RatePerUnit)
	return err
}
