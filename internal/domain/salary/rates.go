package salary

import "math"

// Divisors carries the fixed denominators used to break a monthly salary
// into smaller pay units.
type Divisors struct {
	WorkDaysPerMonth  int
	WorkMinutesPerDay int
	UnitsPerMonth     int
}

func DefaultDivisors() Divisors {
	return Divisors{WorkDaysPerMonth: 22, WorkMinutesPerDay: 480, UnitsPerMonth: 24}
}

type Rates struct {
	RatePerDay    float64 `json:"ratePerDay"`
	HalfDayRate   float64 `json:"halfDayRate"`
	RatePerMinute float64 `json:"ratePerMinute"`
	RatePerUnit   float64 `json:"ratePerUnit"`
}

// DeriveRates splits a monthly salary into day, half-day, per-minute and
// per-unit rates. Deterministic and side-effect free; callers persist the
// result themselves.
func DeriveRates(monthlySalary float64, div Divisors) Rates {
	ratePerDay := RoundTo(monthlySalary/float64(div.WorkDaysPerMonth), 2)
	return Rates{
		RatePerDay:    ratePerDay,
		HalfDayRate:   RoundTo(ratePerDay/2, 2),
		RatePerMinute: RoundTo(ratePerDay/float64(div.WorkMinutesPerDay), 4),
		RatePerUnit:   RoundTo(monthlySalary/float64(div.UnitsPerMonth), 2),
	}
}

// RoundTo rounds half away from zero to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
