package usecase

import (
	"context"
	"sync"

	"vitalog/internal/modules/goals/domain"
	"vitalog/internal/modules/goals/dto"
	goalsin "vitalog/internal/modules/goals/port/in"
	"vitalog/internal/modules/goals/service"
	"vitalog/internal/platform/debounce"
)

// Interactor fronts the goal service and adds the slider commit policy:
// rapid interactive updates are coalesced in a single-slot trigger and
// only the settled value of a burst reaches the repository. Immediate
// operations flush the slot first so commits never reorder.
type Interactor struct {
	svc  *service.GoalService
	slot *debounce.Trigger

	mu          sync.Mutex
	pendingGoal string
}

func NewInteractor(svc *service.GoalService, slot *debounce.Trigger) goalsin.Usecase {
	return &Interactor{svc: svc, slot: slot}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error) {
	i.slot.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	goal, err := i.svc.Add(ctx, input.Name, domain.Kind(input.Kind), input.Target, input.Current, input.Unit, domain.Category(input.Category))
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.GoalOutput, error) {
	goals, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, goal := range goals {
		out = append(out, toOutput(goal))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, goalID string) (dto.GoalDetailOutput, error) {
	goal, err := i.svc.Get(ctx, goalID)
	if err != nil {
		return dto.GoalDetailOutput{}, err
	}
	return toDetail(goal), nil
}

func (i *Interactor) FindByKind(ctx context.Context, kind string) (dto.GoalDetailOutput, error) {
	goal, err := i.svc.FindByKind(ctx, domain.Kind(kind))
	if err != nil {
		return dto.GoalDetailOutput{}, err
	}
	return toDetail(goal), nil
}

func (i *Interactor) SetCurrent(ctx context.Context, input dto.SetCurrentInput) (dto.GoalOutput, error) {
	i.slot.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	goal, ok, err := i.svc.SetCurrent(ctx, input.GoalID, input.Value)
	if err != nil || !ok {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Increment(ctx context.Context, goalID string) (dto.GoalOutput, error) {
	i.slot.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	goal, ok, err := i.svc.Increment(ctx, goalID)
	if err != nil || !ok {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Decrement(ctx context.Context, goalID string) (dto.GoalOutput, error) {
	i.slot.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	goal, ok, err := i.svc.Decrement(ctx, goalID)
	if err != nil || !ok {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

// SlideCurrent coalesces a burst of interactive updates. Only the last
// requested value survives the quiet interval; intermediate values are
// dropped and never reach history. A pending commit for a different
// goal is flushed first so its settled value is not lost.
func (i *Interactor) SlideCurrent(_ context.Context, input dto.SetCurrentInput) error {
	i.mu.Lock()
	prev := i.pendingGoal
	i.mu.Unlock()
	if prev != "" && prev != input.GoalID {
		i.slot.Flush()
	}

	i.mu.Lock()
	i.pendingGoal = input.GoalID
	i.mu.Unlock()

	goalID, value := input.GoalID, input.Value
	i.slot.Schedule(func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		if i.pendingGoal == goalID {
			i.pendingGoal = ""
		}
		// The burst has settled; a failed write here degrades to the
		// previously persisted state.
		_, _, _ = i.svc.SetCurrent(context.Background(), goalID, value)
	})
	return nil
}

// Flush commits any pending slider update immediately. The TUI calls
// this on quit so a settled drag is never dropped.
func (i *Interactor) Flush(_ context.Context) error {
	i.slot.Flush()
	return nil
}

func (i *Interactor) RecordSample(ctx context.Context, input dto.RecordSampleInput) (dto.GoalOutput, error) {
	i.slot.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	goal, ok, err := i.svc.RecordSample(ctx, input.GoalID, input.Day, input.Value)
	if err != nil || !ok {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	i.slot.Flush()
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.Reindex(ctx)
}

func toOutput(goal domain.Goal) dto.GoalOutput {
	return dto.GoalOutput{
		ID:       goal.ID,
		Name:     goal.Name,
		Kind:     string(goal.Kind),
		Target:   goal.Target,
		Current:  goal.Current,
		Unit:     goal.Unit,
		Category: string(goal.Category),
	}
}

func toDetail(goal domain.Goal) dto.GoalDetailOutput {
	history := make([]dto.HistoryPoint, 0, len(goal.History))
	for _, entry := range goal.History {
		history = append(history, dto.HistoryPoint{Day: entry.Day, Value: entry.Value})
	}
	return dto.GoalDetailOutput{
		ID:       goal.ID,
		Name:     goal.Name,
		Kind:     string(goal.Kind),
		Target:   goal.Target,
		Current:  goal.Current,
		Unit:     goal.Unit,
		Category: string(goal.Category),
		History:  history,
	}
}
