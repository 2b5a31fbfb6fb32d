package service_test

import (
	"context"
	"testing"
	"time"

	"vitalog/internal/modules/goals/domain"
	"vitalog/internal/modules/goals/service"
	apperrors "vitalog/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct {
	next string
}

func (f *fakeID) New() string { return f.next }

type memStore struct {
	goals []domain.Goal
	saves int
}

func (m *memStore) Load(context.Context) ([]domain.Goal, error) {
	out := make([]domain.Goal, len(m.goals))
	copy(out, m.goals)
	return out, nil
}

func (m *memStore) Save(_ context.Context, goals []domain.Goal) error {
	m.goals = make([]domain.Goal, len(goals))
	copy(m.goals, goals)
	m.saves++
	return nil
}

type memProjector struct {
	upserts int
	entries []domain.HistoryEntry
	resets  int
}

func (m *memProjector) UpsertGoal(context.Context, domain.Goal) error {
	m.upserts++
	return nil
}

func (m *memProjector) AppendEntry(_ context.Context, _ string, entry domain.HistoryEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memProjector) Reset(context.Context) error {
	m.resets++
	return nil
}

func newService(goals []domain.Goal) (*service.GoalService, *memStore, *memProjector) {
	store := &memStore{goals: goals}
	projector := &memProjector{}
	clk := &fakeClock{now: time.Date(2026, 3, 3, 9, 30, 0, 0, time.UTC)}
	return service.NewGoalService(clk, &fakeID{next: "g-new"}, store, projector), store, projector
}

func TestSetCurrentClampsOvershootAndAppendsHistory(t *testing.T) {
	t.Parallel()
	svc, store, projector := newService([]domain.Goal{{
		ID: "1", Name: "Daily Steps", Kind: domain.KindSteps,
		Target: 10000, Current: 0, Unit: "steps", Category: domain.CategoryFitness,
	}})

	goal, ok, err := svc.SetCurrent(context.Background(), "1", 17000)
	if err != nil || !ok {
		t.Fatalf("set current: ok=%t err=%v", ok, err)
	}
	if goal.Current != 15000 {
		t.Fatalf("expected clamp to 15000 (150%% of target), got %v", goal.Current)
	}
	if len(goal.History) != 1 || goal.History[0].Day != "2026-03-03" || goal.History[0].Value != 15000 {
		t.Fatalf("expected one history entry for today with clamped value, got %+v", goal.History)
	}
	if store.saves != 1 {
		t.Fatalf("mutation must persist before returning, saves=%d", store.saves)
	}
	if len(projector.entries) != 1 {
		t.Fatalf("expected one projected entry, got %d", len(projector.entries))
	}
}

func TestSetCurrentKeepsRequestsWithinOvershoot(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService([]domain.Goal{{
		ID: "1", Name: "Daily Steps", Kind: domain.KindSteps,
		Target: 10000, Current: 0, Unit: "steps", Category: domain.CategoryFitness,
	}})

	goal, ok, err := svc.SetCurrent(context.Background(), "1", 12000)
	if err != nil || !ok {
		t.Fatalf("set current: ok=%t err=%v", ok, err)
	}
	if goal.Current != 12000 {
		t.Fatalf("values under the 150%% ceiling must pass through, got %v", goal.Current)
	}
}

func TestSetCurrentFloorsNegativeRequests(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService([]domain.Goal{{
		ID: "1", Name: "Water Intake", Kind: domain.KindWater,
		Target: 8, Current: 3, Unit: "L", Category: domain.CategoryWater,
	}})

	goal, ok, err := svc.SetCurrent(context.Background(), "1", -5)
	if err != nil || !ok {
		t.Fatalf("set current: ok=%t err=%v", ok, err)
	}
	if goal.Current != 0 {
		t.Fatalf("expected floor at zero, got %v", goal.Current)
	}
}

func TestSetCurrentUnknownIDIsSilentNoop(t *testing.T) {
	t.Parallel()
	seed := domain.DefaultGoals()
	svc, store, projector := newService(seed)

	_, ok, err := svc.SetCurrent(context.Background(), "no-such-goal", 42)
	if err != nil {
		t.Fatalf("unknown id must not surface an error, got %v", err)
	}
	if ok {
		t.Fatalf("unknown id must report no update")
	}
	if store.saves != 0 || len(projector.entries) != 0 {
		t.Fatalf("unknown id must leave repository untouched (saves=%d entries=%d)", store.saves, len(projector.entries))
	}
}

func TestHistoryOnlyGrowsAcrossCommits(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService([]domain.Goal{{
		ID: "1", Name: "Daily Steps", Kind: domain.KindSteps,
		Target: 10000, Current: 100, Unit: "steps", Category: domain.CategoryFitness,
	}})

	prev := 0
	for _, v := range []float64{200, 150, 9000, -3, 20000} {
		goal, _, err := svc.SetCurrent(context.Background(), "1", v)
		if err != nil {
			t.Fatalf("set current %v: %v", v, err)
		}
		if len(goal.History) <= prev {
			t.Fatalf("history shrank: %d -> %d", prev, len(goal.History))
		}
		prev = len(goal.History)
	}
	if prev != 5 {
		t.Fatalf("expected 5 same-day entries (no dedup), got %d", prev)
	}
}

func TestIncrementAndDecrementGoThroughClamp(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService([]domain.Goal{{
		ID: "1", Name: "Water Intake", Kind: domain.KindWater,
		Target: 8, Current: 12, Unit: "L", Category: domain.CategoryWater,
	}})

	goal, _, err := svc.Increment(context.Background(), "1")
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if goal.Current != 12 {
		t.Fatalf("increment at ceiling must stay at 12, got %v", goal.Current)
	}

	goal, _, err = svc.Decrement(context.Background(), "1")
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if goal.Current != 11 {
		t.Fatalf("expected 11 after decrement, got %v", goal.Current)
	}
}

func TestAddAssignsIDEmptyHistoryAndPersists(t *testing.T) {
	t.Parallel()
	svc, store, _ := newService(nil)

	goal, err := svc.Add(context.Background(), "Meditation", domain.KindCustom, 20, 25, "min", domain.CategoryFitness)
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.ID != "g-new" {
		t.Fatalf("expected generated id, got %q", goal.ID)
	}
	if len(goal.History) != 0 {
		t.Fatalf("new goal must start with empty history")
	}
	if goal.Current != 25 {
		t.Fatalf("initial current within ceiling must pass through, got %v", goal.Current)
	}
	if store.saves != 1 {
		t.Fatalf("add must persist, saves=%d", store.saves)
	}

	if _, err := svc.Add(context.Background(), "Broken", domain.KindCustom, 0, 0, "u", domain.CategoryFitness); err == nil {
		t.Fatalf("zero-target goal must be rejected at creation")
	}
}

func TestListIsIdempotentAndInsertionOrdered(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(domain.DefaultGoals())

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lists differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("list order changed at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].Name != "Daily Steps" || first[4].Name != "Protein Intake" {
		t.Fatalf("expected insertion order, got %s .. %s", first[0].Name, first[4].Name)
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(domain.DefaultGoals())

	goal, err := svc.FindByKind(context.Background(), domain.KindSleep)
	if err != nil {
		t.Fatalf("find by kind: %v", err)
	}
	if goal.Name != "Sleep Duration" {
		t.Fatalf("expected sleep goal, got %s", goal.Name)
	}

	if _, err := svc.FindByKind(context.Background(), domain.KindActiveMinutes); err != apperrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unseeded kind, got %v", err)
	}
}

func TestRecordSampleMovesCurrentOnlyForToday(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService([]domain.Goal{{
		ID: "1", Name: "Daily Steps", Kind: domain.KindSteps,
		Target: 10000, Current: 500, Unit: "steps", Category: domain.CategoryFitness,
	}})

	goal, ok, err := svc.RecordSample(context.Background(), "1", "2026-03-01", 8000)
	if err != nil || !ok {
		t.Fatalf("record past sample: ok=%t err=%v", ok, err)
	}
	if goal.Current != 500 {
		t.Fatalf("past sample must not move current, got %v", goal.Current)
	}
	if len(goal.History) != 1 || goal.History[0].Day != "2026-03-01" {
		t.Fatalf("expected history entry for sample day, got %+v", goal.History)
	}

	goal, ok, err = svc.RecordSample(context.Background(), "1", "2026-03-03", 9000)
	if err != nil || !ok {
		t.Fatalf("record today sample: ok=%t err=%v", ok, err)
	}
	if goal.Current != 9000 {
		t.Fatalf("today's sample must move current, got %v", goal.Current)
	}

	if _, _, err := svc.RecordSample(context.Background(), "1", "March 3rd", 1); err == nil {
		t.Fatalf("malformed day must be rejected")
	}
}

func TestReindexReplaysStoreIntoProjection(t *testing.T) {
	t.Parallel()
	svc, _, projector := newService([]domain.Goal{
		{
			ID: "1", Name: "Daily Steps", Kind: domain.KindSteps,
			Target: 10000, Current: 8432, Unit: "steps", Category: domain.CategoryFitness,
			History: []domain.HistoryEntry{{Day: "2026-03-01", Value: 8000}, {Day: "2026-03-02", Value: 9200}},
		},
		{
			ID: "2", Name: "Water Intake", Kind: domain.KindWater,
			Target: 8, Current: 6, Unit: "L", Category: domain.CategoryWater,
			History: []domain.HistoryEntry{{Day: "2026-03-02", Value: 7}},
		},
	})

	if err := svc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 {
		t.Fatalf("reindex must reset projection first")
	}
	if projector.upserts != 2 || len(projector.entries) != 3 {
		t.Fatalf("expected 2 goals and 3 entries replayed, got %d/%d", projector.upserts, len(projector.entries))
	}
}
