package attendance

const (
	PunchTimeInAM  = "TIME_IN_AM"
	PunchTimeOutAM = "TIME_OUT_AM"
	PunchTimeInPM  = "TIME_IN_PM"
	PunchTimeOutPM = "TIME_OUT_PM"

	StatusAbsent        = "absent"
	StatusHalfDay       = "half_day"
	StatusLateUndertime = "late_undertime"
	StatusLate          = "late"
	StatusUndertime     = "undertime"
	StatusPresent       = "present"
)
