package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	goalsinadapter "vitalog/internal/modules/goals/adapter/in"
	goalsoutadapter "vitalog/internal/modules/goals/adapter/out"
	goalsin "vitalog/internal/modules/goals/port/in"
	goalsservice "vitalog/internal/modules/goals/service"
	goalsusecase "vitalog/internal/modules/goals/usecase"
	insightsinadapter "vitalog/internal/modules/insights/adapter/in"
	insightsoutadapter "vitalog/internal/modules/insights/adapter/out"
	insightsin "vitalog/internal/modules/insights/port/in"
	insightsservice "vitalog/internal/modules/insights/service"
	insightsusecase "vitalog/internal/modules/insights/usecase"
	nutritioninadapter "vitalog/internal/modules/nutrition/adapter/in"
	nutritionoutadapter "vitalog/internal/modules/nutrition/adapter/out"
	nutritionin "vitalog/internal/modules/nutrition/port/in"
	nutritionservice "vitalog/internal/modules/nutrition/service"
	nutritionusecase "vitalog/internal/modules/nutrition/usecase"
	plugininadapter "vitalog/internal/modules/plugin/adapter/in"
	pluginoutadapter "vitalog/internal/modules/plugin/adapter/out"
	pluginin "vitalog/internal/modules/plugin/port/in"
	pluginservice "vitalog/internal/modules/plugin/service"
	pluginusecase "vitalog/internal/modules/plugin/usecase"
	workoutsinadapter "vitalog/internal/modules/workouts/adapter/in"
	workoutsoutadapter "vitalog/internal/modules/workouts/adapter/out"
	workoutsin "vitalog/internal/modules/workouts/port/in"
	workoutsservice "vitalog/internal/modules/workouts/service"
	workoutsusecase "vitalog/internal/modules/workouts/usecase"
	"vitalog/internal/platform/clock"
	"vitalog/internal/platform/config"
	"vitalog/internal/platform/debounce"
	"vitalog/internal/platform/id"
	"vitalog/internal/platform/kv"
	uiapp "vitalog/internal/ui/app"
)

// App wires every module's interactor behind its inbound adapters. The
// usecase fields exist for the TUI, which composes across modules.
type App struct {
	GoalCLI      goalsinadapter.CLIHandler
	NutritionCLI nutritioninadapter.CLIHandler
	WorkoutCLI   *workoutsinadapter.CLIHandler
	InsightsCLI  *insightsinadapter.CLIHandler
	PluginCLI    plugininadapter.CLIHandler

	GoalsUC     goalsin.Usecase
	NutritionUC nutritionin.Usecase
	WorkoutsUC  workoutsin.Usecase
	InsightsUC  insightsin.Usecase
	PluginUC    pluginin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := &id.TimeOrdered{}
	state := kv.New(cfg.StateDir)

	historyProjector, err := goalsoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	goalsSvc := goalsservice.NewGoalService(clk, ids, goalsoutadapter.NewStateGoalStore(state), historyProjector)
	goalsUC := goalsusecase.NewInteractor(goalsSvc, debounce.New(debounce.DefaultQuiet))

	nutritionSvc := nutritionservice.NewNutritionService(
		clk, ids,
		nutritionoutadapter.NewStateLogStore(state),
		nutritionoutadapter.NewYAMLTargetsStore(cfg.TargetsPath),
	)
	nutritionUC := nutritionusecase.NewInteractor(nutritionSvc)

	workoutsSvc := workoutsservice.NewWorkoutService(
		clk, ids,
		workoutsoutadapter.NewStatePlanStore(state),
		workoutsoutadapter.NewStateLogStore(state),
	)
	workoutsUC := workoutsusecase.NewInteractor(
		workoutsSvc,
		goalsUC,
		workoutsoutadapter.NewFileActiveWorkoutStore(cfg.RootPath),
	)

	seriesSource, err := insightsoutadapter.NewSQLiteSeriesSource(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new series source: %w", err)
	}
	insightsUC := insightsusecase.NewInteractor(
		insightsservice.NewInsightsService(seriesSource),
		clk, goalsUC, nutritionUC,
	)

	pluginUC := pluginusecase.NewInteractor(pluginservice.NewPluginService(
		pluginoutadapter.NewFileManifestStore(cfg.RootPath),
		pluginoutadapter.NewGRPCHost(),
	), goalsUC)

	return &App{
		GoalCLI:      goalsinadapter.NewCLIHandler(goalsUC),
		NutritionCLI: nutritioninadapter.NewCLIHandler(nutritionUC),
		WorkoutCLI:   workoutsinadapter.NewCLIHandler(workoutsUC),
		InsightsCLI:  insightsinadapter.NewCLIHandler(insightsUC),
		PluginCLI:    plugininadapter.NewCLIHandler(pluginUC),

		GoalsUC:     goalsUC,
		NutritionUC: nutritionUC,
		WorkoutsUC:  workoutsUC,
		InsightsUC:  insightsUC,
		PluginUC:    pluginUC,
	}, nil
}

func RunTUI(rootPath string, app *App) error {
	model := uiapp.NewModel(rootPath, app.GoalsUC, app.NutritionUC, app.WorkoutsUC, app.PluginUC, app.InsightsUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
