package payroll

import (
	"fmt"

	"campuspay/internal/domain/attendance"
	"campuspay/internal/domain/salary"
)

// GrossPay returns the period gross. By default that is the full monthly
// salary, with absences charged back as deductions. When prorate is set the
// gross is built up from days actually worked instead, and the absence and
// half-day line items are suppressed so the shortfall is never charged
// twice.
func GrossPay(monthlySalary float64, sum attendance.RangeSummary, rates salary.Rates, prorate bool) float64 {
	if !prorate {
		return monthlySalary
	}
	return salary.RoundTo(float64(sum.PresentDays)*rates.RatePerDay+float64(sum.HalfDays)*rates.HalfDayRate, 2)
}

// AttendanceItems converts a range summary into deduction line items. The
// late charge is computed by the caller because it depends on the
// configured late policy.
func AttendanceItems(sum attendance.RangeSummary, rates salary.Rates, lateCharge float64, prorated bool) []LineItem {
	var items []LineItem
	if lateCharge > 0 {
		items = append(items, LineItem{
			Code:        ItemLate,
			Description: fmt.Sprintf("Late (%d min, %d occurrences)", sum.TotalLateMinutes, sum.LateOccurrences),
			Amount:      lateCharge,
		})
	}
	if sum.TotalUndertimeMinutes > 0 {
		items = append(items, LineItem{
			Code:        ItemUndertime,
			Description: fmt.Sprintf("Undertime (%d min)", sum.TotalUndertimeMinutes),
			Amount:      salary.RoundTo(float64(sum.TotalUndertimeMinutes)*rates.RatePerMinute, 2),
		})
	}
	if prorated {
		return items
	}
	if sum.AbsentDays > 0 {
		items = append(items, LineItem{
			Code:        ItemAbsent,
			Description: fmt.Sprintf("Absent (%d days)", sum.AbsentDays),
			Amount:      salary.RoundTo(float64(sum.AbsentDays)*rates.RatePerDay, 2),
		})
	}
	if sum.HalfDays > 0 {
		items = append(items, LineItem{
			Code:        ItemHalfDay,
			Description: fmt.Sprintf("Half day (%d days)", sum.HalfDays),
			Amount:      salary.RoundTo(float64(sum.HalfDays)*rates.HalfDayRate, 2),
		})
	}
	return items
}

// NetPay sums the line items and clamps the net at zero. Deductions in
// excess of gross never produce a negative payout; the clamp is reported so
// the run can carry a warning.
func NetPay(gross float64, items []LineItem) (net, total float64, clamped bool) {
	for _, item := range items {
		total += item.Amount
	}
	total = salary.RoundTo(total, 2)
	net = salary.RoundTo(gross-total, 2)
	if net < 0 {
		return 0, total, true
	}
	return net, total, false
}
