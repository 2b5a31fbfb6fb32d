// Package domain holds the pure calculations behind the dashboard:
// completion percentages, the seven day trend window and the sleep score.
package domain

import (
	"math"
	"time"
)

const (
	// Fallback targets used when the matching goal or nutrition
	// target is absent, so the dashboard never divides by zero.
	FallbackCalorieTarget = 2200
	FallbackSleepTarget   = 8

	WeekWindow = 7
)

const dayLayout = "2006-01-02"

// PercentOf reports current as a percentage of target. A missing or
// non-positive target yields 0 rather than an error so callers can
// render an empty bar.
func PercentOf(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target * 100
}

// SleepScore grades last night's sleep against the target in hours,
// rounded to the nearest whole percent. A non-positive target falls
// back to FallbackSleepTarget.
func SleepScore(current, target float64) int {
	if target <= 0 {
		target = FallbackSleepTarget
	}
	return int(math.Round(PercentOf(current, target)))
}

// WeekDays returns the seven calendar days ending at ref, oldest
// first, formatted as day keys.
func WeekDays(ref time.Time) []string {
	days := make([]string, 0, WeekWindow)
	for offset := WeekWindow - 1; offset >= 0; offset-- {
		days = append(days, ref.AddDate(0, 0, -offset).Format(dayLayout))
	}
	return days
}

// WeekSeries projects the recorded per-day values onto the seven day
// window ending at ref. Days without a recorded value report 0.
func WeekSeries(recorded map[string]float64, ref time.Time) []float64 {
	days := WeekDays(ref)
	values := make([]float64, len(days))
	for i, day := range days {
		values[i] = recorded[day]
	}
	return values
}
