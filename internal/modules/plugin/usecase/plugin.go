package usecase

import (
	"context"
	"fmt"

	goalsdto "vitalog/internal/modules/goals/dto"
	goalsin "vitalog/internal/modules/goals/port/in"
	"vitalog/internal/modules/plugin/domain"
	"vitalog/internal/modules/plugin/dto"
	pluginin "vitalog/internal/modules/plugin/port/in"
	"vitalog/internal/modules/plugin/service"
)

type Interactor struct {
	svc   *service.PluginService
	goals goalsin.Usecase
}

func NewInteractor(svc *service.PluginService, goals goalsin.Usecase) pluginin.Usecase {
	return &Interactor{svc: svc, goals: goals}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return i.svc.ListCommands(ctx, pluginName)
}

func (i *Interactor) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return i.svc.Execute(ctx, input)
}

// Import runs an import-kind plugin command and records every sample
// it returns against the target goal. Past-day samples land in history
// only; today's sample also moves the goal's current value.
func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	if input.GoalID == "" {
		return dto.ImportOutput{}, fmt.Errorf("goal id is required for import")
	}
	result, err := i.svc.RunImport(ctx, dto.ExecuteInput{
		PluginName: input.PluginName,
		CommandID:  input.CommandID,
		InputJSON:  input.InputJSON,
		GoalID:     input.GoalID,
		RootPath:   input.RootPath,
		Cwd:        input.Cwd,
		Env:        input.Env,
	})
	if err != nil {
		return dto.ImportOutput{}, err
	}
	if result.ExitCode != 0 {
		return dto.ImportOutput{}, fmt.Errorf("import command exited with %d: %s", result.ExitCode, result.Stderr)
	}
	samples, err := domain.ParseImportPayload(result.OutputJSON)
	if err != nil {
		return dto.ImportOutput{}, err
	}

	recorded := 0
	for _, sample := range samples {
		_, err := i.goals.RecordSample(ctx, goalsdto.RecordSampleInput{
			GoalID: input.GoalID,
			Day:    sample.Day,
			Value:  sample.Value,
		})
		if err != nil {
			return dto.ImportOutput{}, fmt.Errorf("record sample for %s: %w", sample.Day, err)
		}
		recorded++
	}
	return dto.ImportOutput{
		PluginName: input.PluginName,
		CommandID:  input.CommandID,
		GoalID:     input.GoalID,
		Recorded:   recorded,
	}, nil
}
