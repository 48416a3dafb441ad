package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-01")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("expected %v, got %v", want, parsed)
	}

	if _, err := ParseDate("01/03/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start, _ := v.Date("startDate", "2025-03-31")
	end, _ := v.Date("endDate", "2025-03-01")
	v.DateOrder("startDate", start, "endDate", end)
	if v.Valid() {
		t.Fatal("expected validation failure for inverted range")
	}
	if v.Message() == "" {
		t.Fatal("expected a message")
	}
}

func TestValidatorRequired(t *testing.T) {
	v := NewValidator()
	v.Required("processedBy", "  ", "is required")
	if v.Valid() {
		t.Fatal("expected validation failure")
	}
	if len(v.Issues()) != 1 || v.Issues()[0].Field != "processedBy" {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}
}
