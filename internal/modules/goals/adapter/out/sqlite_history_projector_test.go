package out_test

import (
	"context"
	"path/filepath"
	"testing"

	goalsout "vitalog/internal/modules/goals/adapter/out"
	"vitalog/internal/modules/goals/domain"
)

func newProjector(t *testing.T) *goalsout.SQLiteHistoryProjector {
	t.Helper()
	projector, err := goalsout.NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "vitalog.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	t.Cleanup(func() { _ = projector.Close() })
	return projector
}

func TestSeriesReturnsLastValuePerDay(t *testing.T) {
	t.Parallel()
	projector := newProjector(t)
	ctx := context.Background()

	goal := domain.Goal{ID: "1", Name: "Daily Steps", Kind: domain.KindSteps, Target: 10000, Current: 9000, Unit: "steps", Category: domain.CategoryFitness}
	if err := projector.UpsertGoal(ctx, goal); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	entries := []domain.HistoryEntry{
		{Day: "2026-03-01", Value: 8000},
		{Day: "2026-03-02", Value: 7000},
		{Day: "2026-03-02", Value: 9200}, // same-day recommit, settled value
		{Day: "2026-03-04", Value: 9000},
	}
	for _, entry := range entries {
		if err := projector.AppendEntry(ctx, "1", entry); err != nil {
			t.Fatalf("append %+v: %v", entry, err)
		}
	}

	series, err := projector.Series(ctx, "1", "2026-03-01", "2026-03-07")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if series["2026-03-01"] != 8000 {
		t.Fatalf("day 1: got %v", series["2026-03-01"])
	}
	if series["2026-03-02"] != 9200 {
		t.Fatalf("same-day recommit must win: got %v", series["2026-03-02"])
	}
	if _, ok := series["2026-03-03"]; ok {
		t.Fatalf("day without entries must be missing from series")
	}
}

func TestResetClearsProjection(t *testing.T) {
	t.Parallel()
	projector := newProjector(t)
	ctx := context.Background()

	if err := projector.AppendEntry(ctx, "1", domain.HistoryEntry{Day: "2026-03-01", Value: 5}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	series, err := projector.Series(ctx, "1", "2026-01-01", "2026-12-31")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("expected empty projection after reset, got %v", series)
	}
}
