package attendance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListPunches(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, punched_at, punch_type
    FROM attendance_punches
    WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
    ORDER BY punched_at
  `, employeeID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []Punch
	for rows.Next() {
		var punch Punch
		if err := rows.Scan(&punch.EmployeeID, &punch.Timestamp, &punch.Type); err != nil {
			return nil, err
		}
		punches = append(punches, punch)
	}
	return punches, rows.Err()
}

func (s *Store) ListDayRecords(ctx context.Context, employeeID string, start, end time.Time) ([]DayRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, work_date, status, late_minutes, undertime_minutes,
           minutes_worked, overtime_minutes, is_half_day, is_absent
    FROM daily_attendance
    WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
    ORDER BY work_date
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []DayRecord
	for rows.Next() {
		var record DayRecord
		if err := rows.Scan(&record.EmployeeID, &record.Date, &record.Status, &record.LateMinutes,
			&record.UndertimeMinutes, &record.MinutesWorked, &record.OvertimeMinutes,
			&record.HalfDay, &record.Absent); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) UpsertDayRecord(ctx context.Context, record DayRecord) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO daily_attendance
      (employee_id, work_date, status, late_minutes, undertime_minutes,
       minutes_worked, overtime_minutes, is_half_day, is_absent)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    ON CONFLICT (employee_id, work_date)
    DO UPDATE SET status = EXCLUDED.status,
                  late_minutes = EXCLUDED.late_minutes,
                  undertime_minutes = EXCLUDED.undertime_minutes,
                  minutes_worked = EXCLUDED.minutes_worked,
                  overtime_minutes = EXCLUDED.overtime_minutes,
                  is_half_day = EXCLUDED.is_half_day,
                  is_absent = EXCLUDED.is_absent
  `, record.EmployeeID, record.Date, record.Status, record.LateMinutes, record.UndertimeMinutes,
		record.MinutesWorked, record.OvertimeMinutes, record.HalfDay, record.Absent)
	return err
}

func (s *Store) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `SELECT id FROM employees WHERE status = 'active' ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
