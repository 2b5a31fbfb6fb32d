package domain_test

import (
	"testing"
	"time"

	"vitalog/internal/modules/insights/domain"
)

func TestPercentOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"halfway", 5000, 10000, 50},
		{"over target", 12000, 10000, 120},
		{"zero target", 5000, 0, 0},
		{"negative target", 5000, -10, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.PercentOf(tc.current, tc.target); got != tc.want {
				t.Fatalf("PercentOf(%v, %v) = %v, want %v", tc.current, tc.target, got, tc.want)
			}
		})
	}
}

func TestSleepScoreRoundsAndFallsBack(t *testing.T) {
	t.Parallel()
	if got := domain.SleepScore(7.5, 8); got != 94 {
		t.Fatalf("7.5h of 8h should score 94, got %d", got)
	}
	if got := domain.SleepScore(6, 0); got != 75 {
		t.Fatalf("missing target must fall back to 8h, got %d", got)
	}
	if got := domain.SleepScore(9, 8); got != 113 {
		t.Fatalf("oversleeping past target should still report, got %d", got)
	}
}

func TestWeekDaysEndsAtReference(t *testing.T) {
	t.Parallel()
	ref := time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)
	days := domain.WeekDays(ref)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != "2026-02-25" || days[6] != "2026-03-03" {
		t.Fatalf("window must end at the reference day: %v", days)
	}
}

func TestWeekSeriesFillsMissingDaysWithZero(t *testing.T) {
	t.Parallel()
	ref := time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)
	recorded := map[string]float64{
		"2026-02-25": 8000,
		"2026-03-01": 12000,
		"2026-03-03": 4300,
	}
	got := domain.WeekSeries(recorded, ref)
	want := []float64{8000, 0, 0, 0, 12000, 0, 4300}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("day %d: got %v, want %v (series %v)", i, got[i], want[i], got)
		}
	}
}
