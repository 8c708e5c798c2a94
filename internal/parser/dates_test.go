package parser

import (
	"testing"
	"time"
)

func TestNormalizeDate_ISORoundTrip(t *testing.T) {
	t.Parallel()

	for _, date := range []string{"2024-07-29", "2023-01-01", "2025-12-31"} {
		if got := NormalizeDate(date); got != date {
			t.Fatalf("%s: want unchanged, got %v", date, got)
		}
	}
}

func TestNormalizeDate_SerialConversion(t *testing.T) {
	t.Parallel()

	// 45000 - 25569 days after 1970-01-01 UTC.
	want := time.Unix((45000-excelEpochOffsetDays)*86400, 0).UTC().Format("2006-01-02")
	if want != "2023-03-15" {
		t.Fatalf("reference conversion drifted: %s", want)
	}

	if got := NormalizeDate(float64(45000)); got != want {
		t.Fatalf("serial 45000: want %s, got %v", want, got)
	}
	if got := NormalizeDate(45000); got != want {
		t.Fatalf("serial 45000 (int): want %s, got %v", want, got)
	}
}

func TestNormalizeDate_SlashOrderDayFirstWins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"01/02/2024", "2024-02-01"}, // ambiguous: dd/MM wins
		{"13/05/2024", "2024-05-13"},
		{"05/25/2024", "2024-05-25"}, // day-first impossible, MM/dd fallback
		{"1/2/2024", "2024-02-01"},
	}
	for _, c := range cases {
		if got := NormalizeDate(c.in); got != c.want {
			t.Fatalf("%s: want %s, got %v", c.in, c.want, got)
		}
	}
}

func TestNormalizeDate_NativeTime(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, 8, 15, 13, 45, 0, 0, time.UTC)
	if got := NormalizeDate(instant); got != "2024-08-15" {
		t.Fatalf("want 2024-08-15, got %v", got)
	}

	if _, ok := NormalizeDate(time.Time{}).(time.Time); !ok {
		t.Fatalf("zero instant must pass through unchanged")
	}
}

func TestNormalizeDate_FreeForm(t *testing.T) {
	t.Parallel()

	if got := NormalizeDate("2 January 2024"); got != "2024-01-02" {
		t.Fatalf("want 2024-01-02, got %v", got)
	}
	if got := NormalizeDate("2024.07.29"); got != "2024-07-29" {
		t.Fatalf("want 2024-07-29, got %v", got)
	}
}

func TestNormalizeDate_UnparsablePassesThrough(t *testing.T) {
	t.Parallel()

	if got := NormalizeDate("next Tuesday"); got != "next Tuesday" {
		t.Fatalf("unparsable string must pass through, got %v", got)
	}
	if got := NormalizeDate(true); got != true {
		t.Fatalf("boolean must pass through, got %v", got)
	}
	if got := NormalizeDate(nil); got != nil {
		t.Fatalf("nil must pass through, got %v", got)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"lundi":    "Lundi",
		"été":      "Été",
		"Mardi":    "Mardi",
		"":         "",
		"dimanche": "Dimanche",
	}
	for in, want := range cases {
		if got := capitalizeFirst(in); got != want {
			t.Fatalf("%q: want %q, got %q", in, want, got)
		}
	}
}
