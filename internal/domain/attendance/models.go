package attendance

import "time"

type Punch struct {
	EmployeeID string    `json:"employeeId"`
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"`
}

type DayRecord struct {
	EmployeeID       string    `json:"employeeId"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`
	LateMinutes      int       `json:"lateMinutes"`
	UndertimeMinutes int       `json:"undertimeMinutes"`
	MinutesWorked    int       `json:"minutesWorked"`
	OvertimeMinutes  int       `json:"overtimeMinutes"`
	HalfDay          bool      `json:"halfDay"`
	Absent           bool      `json:"absent"`
}

// RangeSummary folds a run of day records into period totals.
type RangeSummary struct {
	TotalLateMinutes      int `json:"totalLateMinutes"`
	TotalUndertimeMinutes int `json:"totalUndertimeMinutes"`
	TotalMinutesWorked    int `json:"totalMinutesWorked"`
	AbsentDays            int `json:"absentDays"`
	HalfDays              int `json:"halfDays"`
	PresentDays           int `json:"presentDays"`
	LateOccurrences       int `json:"lateOccurrences"`
	RecordedDays          int `json:"recordedDays"`
}

// Schedule is the configured workday shape the classifier measures against.
type Schedule struct {
	WorkStart       string
	WorkEnd         string
	GracePeriodMins int
	LunchBreakMins  int
}
