package payroll

import (
	"testing"

	"campuspay/internal/domain/attendance"
	"campuspay/internal/domain/salary"
)

func testRates() salary.Rates {
	return salary.Rates{RatePerDay: 1200, HalfDayRate: 600, RatePerMinute: 2.5, RatePerUnit: 1100}
}

func TestAttendanceItems(t *testing.T) {
	sum := attendance.RangeSummary{
		TotalLateMinutes:      30,
		LateOccurrences:       2,
		TotalUndertimeMinutes: 20,
		AbsentDays:            1,
		HalfDays:              1,
	}
	items := AttendanceItems(sum, testRates(), 75, false)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d: %+v", len(items), items)
	}

	byCode := map[string]float64{}
	for _, item := range items {
		byCode[item.Code] = item.Amount
	}
	if byCode[ItemLate] != 75 {
		t.Fatalf("late: expected 75, got %v", byCode[ItemLate])
	}
	if byCode[ItemUndertime] != 50 {
		t.Fatalf("undertime: expected 50, got %v", byCode[ItemUndertime])
	}
	if byCode[ItemAbsent] != 1200 {
		t.Fatalf("absent: expected 1200, got %v", byCode[ItemAbsent])
	}
	if byCode[ItemHalfDay] != 600 {
		t.Fatalf("half day: expected 600, got %v", byCode[ItemHalfDay])
	}
}

func TestAttendanceItemsProratedSuppressesAbsences(t *testing.T) {
	sum := attendance.RangeSummary{
		TotalLateMinutes: 10,
		LateOccurrences:  1,
		AbsentDays:       2,
		HalfDays:         1,
	}
	items := AttendanceItems(sum, testRates(), 25, true)
	for _, item := range items {
		if item.Code == ItemAbsent || item.Code == ItemHalfDay {
			t.Fatalf("prorated run must not charge %s", item.Code)
		}
	}
	if len(items) != 1 {
		t.Fatalf("expected only the late item, got %+v", items)
	}
}

func TestGrossPay(t *testing.T) {
	sum := attendance.RangeSummary{PresentDays: 10, HalfDays: 2}
	if got := GrossPay(26400, sum, testRates(), false); got != 26400 {
		t.Fatalf("full gross: expected 26400, got %v", got)
	}
	if got := GrossPay(26400, sum, testRates(), true); got != 13200 {
		t.Fatalf("prorated gross: expected 13200, got %v", got)
	}
}

func TestNetPay(t *testing.T) {
	items := []LineItem{{Amount: 1200}, {Amount: 300.5}}
	net, total, clamped := NetPay(26400, items)
	if total != 1500.5 {
		t.Fatalf("expected total 1500.5, got %v", total)
	}
	if net != 24899.5 {
		t.Fatalf("expected net 24899.5, got %v", net)
	}
	if clamped {
		t.Fatal("net should not be clamped")
	}
}

func TestNetPayClampsAtZero(t *testing.T) {
	net, total, clamped := NetPay(1000, []LineItem{{Amount: 1500}})
	if !clamped {
		t.Fatal("expected clamp")
	}
	if net != 0 {
		t.Fatalf("expected net 0, got %v", net)
	}
	if total != 1500 {
		t.Fatalf("expected total 1500, got %v", total)
	}
}
