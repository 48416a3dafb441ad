package attendance

import "time"

// Classify turns one employee's punches for a single calendar date into a
// DayRecord. It is a pure function of the punches and the schedule: the same
// input always produces the same record.
//
// An incomplete AM or PM pair anywhere in the day yields a half day and
// suppresses late/undertime for the whole day. That mirrors how the clock
// feed has always been settled and is intentional.
func Classify(employeeID string, date time.Time, punches []Punch, sched Schedule) DayRecord {
	record := DayRecord{EmployeeID: employeeID, Date: date}

	if len(punches) == 0 {
		record.Status = StatusAbsent
		record.Absent = true
		return record
	}

	var amIn, amOut, pmIn, pmOut *time.Time
	for i := range punches {
		ts := punches[i].Timestamp
		switch punches[i].Type {
		case PunchTimeInAM:
			if amIn == nil {
				amIn = &ts
			}
		case PunchTimeOutAM:
			if amOut == nil {
				amOut = &ts
			}
		case PunchTimeInPM:
			if pmIn == nil {
				pmIn = &ts
			}
		case PunchTimeOutPM:
			if pmOut == nil {
				pmOut = &ts
			}
		}
	}

	amComplete := amIn != nil && amOut != nil
	pmComplete := pmIn != nil && pmOut != nil

	if !amComplete || !pmComplete {
		record.Status = StatusHalfDay
		record.HalfDay = true
		if amComplete {
			record.MinutesWorked = positiveMinutes(amOut.Sub(*amIn))
		}
		if pmComplete {
			record.MinutesWorked = positiveMinutes(pmOut.Sub(*pmIn))
		}
		return record
	}

	graceEnd := timeOfDay(date, sched.WorkStart).Add(time.Duration(sched.GracePeriodMins) * time.Minute)
	workEnd := timeOfDay(date, sched.WorkEnd)

	record.LateMinutes = positiveMinutes(amIn.Sub(graceEnd))
	record.UndertimeMinutes = positiveMinutes(workEnd.Sub(*pmOut))
	record.OvertimeMinutes = positiveMinutes(pmOut.Sub(workEnd))

	worked := positiveMinutes(amOut.Sub(*amIn)) + positiveMinutes(pmOut.Sub(*pmIn)) - sched.LunchBreakMins
	if worked < 0 {
		worked = 0
	}
	record.MinutesWorked = worked

	switch {
	case record.LateMinutes > 0 && record.UndertimeMinutes > 0:
		record.Status = StatusLateUndertime
	case record.LateMinutes > 0:
		record.Status = StatusLate
	case record.UndertimeMinutes > 0:
		record.Status = StatusUndertime
	default:
		record.Status = StatusPresent
	}
	return record
}

// SummarizeRange totals day records for a payroll period.
func SummarizeRange(records []DayRecord) RangeSummary {
	var summary RangeSummary
	for _, record := range records {
		summary.RecordedDays++
		switch {
		case record.Absent:
			summary.AbsentDays++
			continue
		case record.HalfDay:
			summary.HalfDays++
		default:
			summary.PresentDays++
		}
		summary.TotalLateMinutes += record.LateMinutes
		summary.TotalUndertimeMinutes += record.UndertimeMinutes
		summary.TotalMinutesWorked += record.MinutesWorked
		if record.LateMinutes > 0 {
			summary.LateOccurrences++
		}
	}
	return summary
}

// timeOfDay anchors an HH:MM wall-clock value on the given date, in the
// date's location. Invalid values fall back to midnight.
func timeOfDay(date time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}

func positiveMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Minutes())
}
