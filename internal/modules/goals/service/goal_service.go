package service

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/modules/goals/domain"
	goalsout "vitalog/internal/modules/goals/port/out"
	"vitalog/internal/platform/clock"
	apperrors "vitalog/internal/platform/errors"
	"vitalog/internal/platform/id"
)

// GoalService owns the live collection of goals. Every mutation
// persists the whole collection through the store before returning and
// then mirrors the change into the history projector.
type GoalService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     goalsout.GoalStore
	projector goalsout.HistoryProjector
}

func NewGoalService(clk clock.Clock, idGen id.Generator, store goalsout.GoalStore, projector goalsout.HistoryProjector) *GoalService {
	return &GoalService{clock: clk, idGen: idGen, store: store, projector: projector}
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.store.Load(ctx)
}

func (s *GoalService) Get(ctx context.Context, goalID string) (domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	for _, goal := range goals {
		if goal.ID == goalID {
			return goal, nil
		}
	}
	return domain.Goal{}, apperrors.ErrNotFound
}

func (s *GoalService) FindByKind(ctx context.Context, kind domain.Kind) (domain.Goal, error) {
	if err := kind.Validate(); err != nil {
		return domain.Goal{}, err
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	for _, goal := range goals {
		if goal.Kind == kind {
			return goal, nil
		}
	}
	return domain.Goal{}, apperrors.ErrNotFound
}

func (s *GoalService) Add(ctx context.Context, name string, kind domain.Kind, target, current float64, unit string, category domain.Category) (domain.Goal, error) {
	if kind == "" {
		kind = domain.KindCustom
	}
	goal := domain.Goal{
		ID:       s.idGen.New(),
		Name:     strings.TrimSpace(name),
		Kind:     kind,
		Target:   target,
		Current:  domain.Clamp(current, target),
		Unit:     strings.TrimSpace(unit),
		Category: category,
		History:  []domain.HistoryEntry{},
	}
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	goals = append(goals, goal)
	if err := s.store.Save(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	if err := s.projector.UpsertGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// SetCurrent commits a requested current value through the clamp and
// appends one history entry dated to the current calendar day. An
// unknown id is a silent no-op: callers only hand over ids obtained
// from a prior listing, so nothing is surfaced. The second return
// reports whether a goal was updated.
func (s *GoalService) SetCurrent(ctx context.Context, goalID string, requested float64) (domain.Goal, bool, error) {
	return s.commit(ctx, goalID, s.today(), requested, true)
}

// RecordSample is the importer path: it appends a history entry for an
// explicit day. Current moves only when the sample is for today.
func (s *GoalService) RecordSample(ctx context.Context, goalID, day string, value float64) (domain.Goal, bool, error) {
	if _, err := clock.ParseDay(day); err != nil {
		return domain.Goal{}, false, fmt.Errorf("%w: bad day %q", apperrors.ErrInvalidInput, day)
	}
	return s.commit(ctx, goalID, day, value, day == s.today())
}

func (s *GoalService) Increment(ctx context.Context, goalID string) (domain.Goal, bool, error) {
	return s.nudge(ctx, goalID, 1)
}

func (s *GoalService) Decrement(ctx context.Context, goalID string) (domain.Goal, bool, error) {
	return s.nudge(ctx, goalID, -1)
}

// Reindex rebuilds the projection from the durable collection.
func (s *GoalService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for _, goal := range goals {
		if err := s.projector.UpsertGoal(ctx, goal); err != nil {
			return err
		}
		for _, entry := range goal.History {
			if err := s.projector.AppendEntry(ctx, goal.ID, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *GoalService) nudge(ctx context.Context, goalID string, delta float64) (domain.Goal, bool, error) {
	goal, err := s.Get(ctx, goalID)
	if err == apperrors.ErrNotFound {
		return domain.Goal{}, false, nil
	}
	if err != nil {
		return domain.Goal{}, false, err
	}
	return s.SetCurrent(ctx, goalID, goal.Current+delta)
}

func (s *GoalService) commit(ctx context.Context, goalID, day string, requested float64, moveCurrent bool) (domain.Goal, bool, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, false, err
	}
	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		clamped := domain.Clamp(requested, goals[i].Target)
		if moveCurrent {
			goals[i].Current = clamped
		}
		entry := domain.HistoryEntry{Day: day, Value: clamped}
		goals[i].History = append(goals[i].History, entry)
		if err := s.store.Save(ctx, goals); err != nil {
			return domain.Goal{}, false, err
		}
		if err := s.projector.UpsertGoal(ctx, goals[i]); err != nil {
			return domain.Goal{}, false, err
		}
		if err := s.projector.AppendEntry(ctx, goalID, entry); err != nil {
			return domain.Goal{}, false, err
		}
		return goals[i], true, nil
	}
	return domain.Goal{}, false, nil
}

func (s *GoalService) today() string {
	return clock.DayOf(s.clock.Now())
}
