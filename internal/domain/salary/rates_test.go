package salary

import "testing"

func TestDeriveRates(t *testing.T) {
	rates := DeriveRates(26400, DefaultDivisors())
	if rates.RatePerDay != 1200.00 {
		t.Fatalf("expected rate per day 1200.00, got %v", rates.RatePerDay)
	}
	if rates.HalfDayRate != 600.00 {
		t.Fatalf("expected half day rate 600.00, got %v", rates.HalfDayRate)
	}
	if rates.RatePerMinute != 2.50 {
		t.Fatalf("expected rate per minute 2.50, got %v", rates.RatePerMinute)
	}
	if rates.RatePerUnit != 1100.00 {
		t.Fatalf("expected rate per unit 1100.00, got %v", rates.RatePerUnit)
	}
}

func TestDeriveRatesRounding(t *testing.T) {
	rates := DeriveRates(25000, DefaultDivisors())
	// 25000/22 = 1136.3636... rounds half-up to 1136.36.
	if rates.RatePerDay != 1136.36 {
		t.Fatalf("expected rate per day 1136.36, got %v", rates.RatePerDay)
	}
	if rates.HalfDayRate != 568.18 {
		t.Fatalf("expected half day rate 568.18, got %v", rates.HalfDayRate)
	}
	// 1136.36/480 = 2.36741... keeps four places.
	if rates.RatePerMinute != 2.3674 {
		t.Fatalf("expected rate per minute 2.3674, got %v", rates.RatePerMinute)
	}
}

func TestDeriveRatesDeterministic(t *testing.T) {
	first := DeriveRates(31860.55, DefaultDivisors())
	for i := 0; i < 5; i++ {
		if DeriveRates(31860.55, DefaultDivisors()) != first {
			t.Fatal("rate derivation is not deterministic")
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		value  float64
		places int
		want   float64
	}{
		{1.234, 2, 1.23},
		{1.236, 2, 1.24},
		{625.0501, 2, 625.05},
		{2.36741, 4, 2.3674},
	}
	for _, tc := range cases {
		if got := RoundTo(tc.value, tc.places); got != tc.want {
			t.Fatalf("RoundTo(%v, %d) = %v, want %v", tc.value, tc.places, got, tc.want)
		}
	}
}
