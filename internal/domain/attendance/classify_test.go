package attendance

import (
	"testing"
	"time"
)

var testSched = Schedule{
	WorkStart:       "08:00",
	WorkEnd:         "17:00",
	GracePeriodMins: 10,
	LunchBreakMins:  60,
}

func punchAt(employeeID, punchType string, hour, minute int) Punch {
	return Punch{
		EmployeeID: employeeID,
		Timestamp:  time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC),
		Type:       punchType,
	}
}

func testDate() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestClassifyFullDay(t *testing.T) {
	punches := []Punch{
		punchAt("e1", PunchTimeInAM, 8, 15),
		punchAt("e1", PunchTimeOutAM, 12, 0),
		punchAt("e1", PunchTimeInPM, 13, 0),
		punchAt("e1", PunchTimeOutPM, 16, 45),
	}

	record := Classify("e1", testDate(), punches, testSched)
	if record.LateMinutes != 5 {
		t.Fatalf("expected 5 late minutes, got %d", record.LateMinutes)
	}
	if record.UndertimeMinutes != 15 {
		t.Fatalf("expected 15 undertime minutes, got %d", record.UndertimeMinutes)
	}
	if record.MinutesWorked != 390 {
		t.Fatalf("expected 390 minutes worked, got %d", record.MinutesWorked)
	}
	if record.Status != StatusLateUndertime {
		t.Fatalf("expected status %q, got %q", StatusLateUndertime, record.Status)
	}
}

func TestClassifyNoPunchesIsAbsent(t *testing.T) {
	record := Classify("e1", testDate(), nil, testSched)
	if record.Status != StatusAbsent || !record.Absent {
		t.Fatalf("expected absent record, got %+v", record)
	}
	if record.LateMinutes != 0 || record.UndertimeMinutes != 0 || record.MinutesWorked != 0 {
		t.Fatalf("expected zeroed minutes, got %+v", record)
	}
}

func TestClassifyMissingPMPairIsHalfDay(t *testing.T) {
	// Late AM arrival must not surface as late minutes on a half day.
	punches := []Punch{
		punchAt("e1", PunchTimeInAM, 9, 30),
		punchAt("e1", PunchTimeOutAM, 12, 0),
	}

	record := Classify("e1", testDate(), punches, testSched)
	if record.Status != StatusHalfDay || !record.HalfDay {
		t.Fatalf("expected half day, got %+v", record)
	}
	if record.LateMinutes != 0 || record.UndertimeMinutes != 0 {
		t.Fatalf("expected suppressed late/undertime, got %+v", record)
	}
	if record.MinutesWorked != 150 {
		t.Fatalf("expected 150 minutes from AM half, got %d", record.MinutesWorked)
	}
}

func TestClassifyDanglingPunchIsHalfDay(t *testing.T) {
	punches := []Punch{punchAt("e1", PunchTimeInAM, 8, 0)}

	record := Classify("e1", testDate(), punches, testSched)
	if record.Status != StatusHalfDay {
		t.Fatalf("expected half day for incomplete pair, got %q", record.Status)
	}
	if record.MinutesWorked != 0 {
		t.Fatalf("expected 0 minutes worked, got %d", record.MinutesWorked)
	}
}

func TestClassifyOnTimeWithinGrace(t *testing.T) {
	punches := []Punch{
		punchAt("e1", PunchTimeInAM, 8, 10),
		punchAt("e1", PunchTimeOutAM, 12, 0),
		punchAt("e1", PunchTimeInPM, 13, 0),
		punchAt("e1", PunchTimeOutPM, 17, 0),
	}

	record := Classify("e1", testDate(), punches, testSched)
	if record.Status != StatusPresent {
		t.Fatalf("expected present, got %q", record.Status)
	}
	if record.LateMinutes != 0 {
		t.Fatalf("expected grace arrival to count as on time, got %d late minutes", record.LateMinutes)
	}
}

func TestClassifyOvertime(t *testing.T) {
	punches := []Punch{
		punchAt("e1", PunchTimeInAM, 8, 0),
		punchAt("e1", PunchTimeOutAM, 12, 0),
		punchAt("e1", PunchTimeInPM, 13, 0),
		punchAt("e1", PunchTimeOutPM, 18, 30),
	}

	record := Classify("e1", testDate(), punches, testSched)
	if record.OvertimeMinutes != 90 {
		t.Fatalf("expected 90 overtime minutes, got %d", record.OvertimeMinutes)
	}
	if record.UndertimeMinutes != 0 {
		t.Fatalf("expected no undertime, got %d", record.UndertimeMinutes)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	punches := []Punch{
		punchAt("e1", PunchTimeInAM, 8, 22),
		punchAt("e1", PunchTimeOutAM, 12, 0),
		punchAt("e1", PunchTimeInPM, 12, 58),
		punchAt("e1", PunchTimeOutPM, 16, 40),
	}

	first := Classify("e1", testDate(), punches, testSched)
	for i := 0; i < 10; i++ {
		again := Classify("e1", testDate(), punches, testSched)
		if again != first {
			t.Fatalf("classification drifted on run %d: %+v vs %+v", i, again, first)
		}
	}
}

func TestSummarizeRange(t *testing.T) {
	records := []DayRecord{
		{Status: StatusLate, LateMinutes: 12, MinutesWorked: 468},
		{Status: StatusAbsent, Absent: true},
		{Status: StatusHalfDay, HalfDay: true, MinutesWorked: 225},
		{Status: StatusPresent, MinutesWorked: 480},
		{Status: StatusLateUndertime, LateMinutes: 3, UndertimeMinutes: 20, MinutesWorked: 457},
	}

	summary := SummarizeRange(records)
	if summary.TotalLateMinutes != 15 {
		t.Fatalf("expected 15 late minutes, got %d", summary.TotalLateMinutes)
	}
	if summary.TotalUndertimeMinutes != 20 {
		t.Fatalf("expected 20 undertime minutes, got %d", summary.TotalUndertimeMinutes)
	}
	if summary.AbsentDays != 1 || summary.HalfDays != 1 || summary.PresentDays != 3 {
		t.Fatalf("unexpected day counts: %+v", summary)
	}
	if summary.LateOccurrences != 2 {
		t.Fatalf("expected 2 late occurrences, got %d", summary.LateOccurrences)
	}
	if summary.TotalMinutesWorked != 468+225+480+457 {
		t.Fatalf("unexpected minutes worked: %d", summary.TotalMinutesWorked)
	}
}
