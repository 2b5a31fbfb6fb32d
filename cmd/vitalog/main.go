package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vitalog/internal/bootstrap"
	insightsdto "vitalog/internal/modules/insights/dto"
	plugindto "vitalog/internal/modules/plugin/dto"
	workoutsdto "vitalog/internal/modules/workouts/dto"
	"vitalog/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootPath string

	root := &cobra.Command{
		Use:           "vitalog",
		Short:         "Local-first fitness tracking hub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rootPath, "root", ".", "vitalog data directory")

	root.AddCommand(newTUICmd(&rootPath))
	root.AddCommand(newGoalCmd(&rootPath))
	root.AddCommand(newMealCmd(&rootPath))
	root.AddCommand(newStatsCmd(&rootPath))
	root.AddCommand(newWorkoutCmd(&rootPath))
	root.AddCommand(newReindexCmd(&rootPath))
	root.AddCommand(newPluginCmd(&rootPath))
	return root
}

func loadApp(rootPath string) (*bootstrap.App, error) {
	cfg, err := config.New(rootPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(rootPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run vitalog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*rootPath, app)
		},
	}
}

func newGoalCmd(rootPath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Goal tracking commands"}

	var kind, unit, category string
	var target, current float64
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tracked goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Add(context.Background(), args[0], kind, target, current, unit, category)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) target=%.1f %s\n", out.Name, out.ID, out.Target, out.Unit)
			return nil
		},
	}
	add.Flags().StringVar(&kind, "kind", "custom", "goal kind: steps|water|sleep|calories|protein|active_minutes|custom")
	add.Flags().Float64Var(&target, "target", 0, "daily target value")
	add.Flags().Float64Var(&current, "current", 0, "starting value for today")
	add.Flags().StringVar(&unit, "unit", "", "display unit")
	add.Flags().StringVar(&category, "category", "fitness", "category: fitness|nutrition|sleep|water")
	goal.AddCommand(add)

	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tracked goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			goals, err := app.GoalCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, g := range goals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f/%.1f %s\n", g.ID, g.Kind, g.Name, g.Current, g.Target, g.Unit)
			}
			return nil
		},
	})

	var goalID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show goal details with history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(goalID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			g, err := app.GoalCLI.Get(context.Background(), goalID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\nkind: %s\ncategory: %s\ncurrent: %.1f\ntarget: %.1f %s\n", g.ID, g.Name, g.Kind, g.Category, g.Current, g.Target, g.Unit)
			for _, point := range g.History {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", point.Day, point.Value)
			}
			return nil
		},
	}
	show.Flags().StringVar(&goalID, "id", "", "goal id")
	goal.AddCommand(show)

	var setID string
	set := &cobra.Command{
		Use:   "set --id <id> <value>",
		Short: "Set today's value for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(setID) == "" {
				return fmt.Errorf("--id is required")
			}
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[0])
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.SetCurrent(context.Background(), setID, value)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %.1f %s\n", out.Name, out.Current, out.Unit)
			return nil
		},
	}
	set.Flags().StringVar(&setID, "id", "", "goal id")
	goal.AddCommand(set)

	var upID string
	up := &cobra.Command{
		Use:   "up --id <id>",
		Short: "Nudge a goal up by one step",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(upID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Increment(context.Background(), upID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %.1f %s\n", out.Name, out.Current, out.Unit)
			return nil
		},
	}
	up.Flags().StringVar(&upID, "id", "", "goal id")
	goal.AddCommand(up)

	var downID string
	down := &cobra.Command{
		Use:   "down --id <id>",
		Short: "Nudge a goal down by one step",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(downID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Decrement(context.Background(), downID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %.1f %s\n", out.Name, out.Current, out.Unit)
			return nil
		},
	}
	down.Flags().StringVar(&downID, "id", "", "goal id")
	goal.AddCommand(down)

	var sampleID, sampleDay string
	sample := &cobra.Command{
		Use:   "sample --id <id> --day <yyyy-mm-dd> <value>",
		Short: "Record a value for a past day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(sampleID) == "" || strings.TrimSpace(sampleDay) == "" {
				return fmt.Errorf("--id and --day are required")
			}
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[0])
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.RecordSample(context.Background(), sampleID, sampleDay, value)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s=%.1f\n", out.Name, sampleDay, value)
			return nil
		},
	}
	sample.Flags().StringVar(&sampleID, "id", "", "goal id")
	sample.Flags().StringVar(&sampleDay, "day", "", "day in yyyy-mm-dd form")
	goal.AddCommand(sample)

	return goal
}

func newMealCmd(rootPath *string) *cobra.Command {
	meal := &cobra.Command{Use: "meal", Short: "Nutrition log commands"}

	var calories, protein, carbs, fat float64
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Log a meal for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.NutritionCLI.AddMeal(context.Background(), args[0], calories, protein, carbs, fat)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s (%.0f kcal) at %s\n", out.Name, out.Calories, out.LoggedAt.Format("15:04"))
			return nil
		},
	}
	add.Flags().Float64Var(&calories, "kcal", 0, "calories")
	add.Flags().Float64Var(&protein, "protein", 0, "protein grams")
	add.Flags().Float64Var(&carbs, "carbs", 0, "carb grams")
	add.Flags().Float64Var(&fat, "fat", 0, "fat grams")
	meal.AddCommand(add)

	meal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show today's meals against targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			summary, err := app.NutritionCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "calories %.0f/%.0f kcal (%.0f%%)\n", summary.Calories.Current, summary.Calories.Target, summary.Calories.Percent)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "protein  %.0f/%.0f g (%.0f%%)\n", summary.Protein.Current, summary.Protein.Target, summary.Protein.Percent)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "carbs    %.0f/%.0f g (%.0f%%)\n", summary.Carbs.Current, summary.Carbs.Target, summary.Carbs.Percent)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fat      %.0f/%.0f g (%.0f%%)\n", summary.Fat.Current, summary.Fat.Target, summary.Fat.Percent)
			for _, m := range summary.Meals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f kcal\tP%.0f C%.0f F%.0f\n", m.LoggedAt.Format("15:04"), m.Name, m.Calories, m.Protein, m.Carbs, m.Fat)
			}
			return nil
		},
	})

	return meal
}

func newStatsCmd(rootPath *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Derived metrics"}

	stats.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Show today's stat cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.InsightsCLI.TodayStats(context.Background())
			if err != nil {
				return err
			}
			for _, s := range []insightsdto.StatOutput{out.Steps, out.ActiveMinutes, out.Calories} {
				label := s.Label
				if label == "" {
					label = "untracked"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s %.0f/%.0f %s (%.0f%%)\n", label, s.Current, s.Target, s.Unit, s.Percent)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s score %d/100\n", "sleep", out.SleepScore)
			return nil
		},
	})

	var weeklyKind string
	weekly := &cobra.Command{
		Use:   "weekly --kind <kind>",
		Short: "Show the last 7 days of a tracked metric",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.InsightsCLI.Weekly(context.Background(), weeklyKind, time.Time{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) target=%.0f %s/day\n", out.Name, out.Kind, out.Target, out.Unit)
			for _, point := range out.Points {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", point.Day, point.Value)
			}
			return nil
		},
	}
	weekly.Flags().StringVar(&weeklyKind, "kind", "steps", "goal kind")
	stats.AddCommand(weekly)

	return stats
}

func newWorkoutCmd(rootPath *string) *cobra.Command {
	workout := &cobra.Command{Use: "workout", Short: "Workout plan and session commands"}

	var focus, exercises string
	var minutes int
	var estCalories float64
	addPlan := &cobra.Command{
		Use:   "add-plan <name>",
		Short: "Add a workout plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseExercises(exercises)
			if err != nil {
				return err
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.WorkoutCLI.AddPlan(context.Background(), workoutsdto.AddPlanInput{
				Name:      args[0],
				Focus:     focus,
				Minutes:   minutes,
				Calories:  estCalories,
				Exercises: parsed,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added plan %s (%s)\n", out.Name, out.ID)
			return nil
		},
	}
	addPlan.Flags().StringVar(&focus, "focus", "", "plan focus, e.g. strength")
	addPlan.Flags().IntVar(&minutes, "minutes", 30, "estimated duration")
	addPlan.Flags().Float64Var(&estCalories, "calories", 0, "estimated calorie burn")
	addPlan.Flags().StringVar(&exercises, "exercises", "", "comma list of name:sets:reps")
	workout.AddCommand(addPlan)

	workout.AddCommand(&cobra.Command{
		Use:   "plans",
		Short: "List workout plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			plans, err := app.WorkoutCLI.ListPlans(context.Background())
			if err != nil {
				return err
			}
			for _, p := range plans {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t~%dmin ~%.0fkcal\n", p.ID, p.Name, p.Focus, p.Minutes, p.Calories)
			}
			return nil
		},
	})

	var planID string
	start := &cobra.Command{
		Use:   "start --plan <id>",
		Short: "Start a workout from a plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(planID) == "" {
				return fmt.Errorf("--plan is required")
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.WorkoutCLI.Start(context.Background(), planID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %s at %s\n", out.PlanName, out.StartedAt.Format("15:04:05"))
			return nil
		},
	}
	start.Flags().StringVar(&planID, "plan", "", "plan id")
	workout.AddCommand(start)

	var notes string
	finish := &cobra.Command{
		Use:   "finish",
		Short: "Finish the active workout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.WorkoutCLI.Finish(context.Background(), notes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "finished %s: %d min, %.0f kcal", out.PlanName, out.DurationMin, out.Calories)
			if out.MinutesCredited {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), " (active minutes credited)")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	finish.Flags().StringVar(&notes, "notes", "", "session notes")
	workout.AddCommand(finish)

	workout.AddCommand(&cobra.Command{
		Use:   "log",
		Short: "List finished workouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			history, err := app.WorkoutCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no workouts logged")
				return nil
			}
			for _, w := range history {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dmin\t%.0fkcal\t%s\n", w.StartedAt.Format("2006-01-02 15:04"), w.PlanName, w.DurationMin, w.Calories, w.Notes)
			}
			return nil
		},
	})

	return workout
}

// parseExercises turns "squat:3:8,bench:3:10" into exercise inputs.
func parseExercises(raw string) ([]workoutsdto.ExerciseInput, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []workoutsdto.ExerciseInput
	for _, entry := range strings.Split(raw, ",") {
		fields := strings.Split(strings.TrimSpace(entry), ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid exercise %q, want name:sets:reps", entry)
		}
		sets, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid sets in %q", entry)
		}
		reps, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid reps in %q", entry)
		}
		out = append(out, workoutsdto.ExerciseInput{Name: fields[0], Sets: sets, Reps: reps})
	}
	return out, nil
}

func newReindexCmd(rootPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history index from goal state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			if err := app.GoalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newPluginCmd(rootPath *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Plugin operations"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t binary=%s\n", p.Name, p.Version, p.Enabled, p.Binary)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var commandPluginName string
	commandsCmd := &cobra.Command{
		Use:   "commands --plugin <name>",
		Short: "List commands exposed by a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(commandPluginName) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			commands, err := app.PluginCLI.ListCommands(context.Background(), commandPluginName)
			if err != nil {
				return err
			}
			if len(commands) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no commands")
				return nil
			}
			for _, item := range commands {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s kind=%s timeout_ms=%d title=%q\n", item.ID, item.Kind, item.TimeoutMS, item.Title)
			}
			return nil
		},
	}
	commandsCmd.Flags().StringVar(&commandPluginName, "plugin", "", "plugin name")
	plugin.AddCommand(commandsCmd)

	var runPluginName, runCommandID, runInputJSON, runGoalID string
	runCmd := &cobra.Command{
		Use:   "run --plugin <name> --command <id>",
		Short: "Execute a plugin command capability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(runPluginName) == "" || strings.TrimSpace(runCommandID) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			if err := validateJSONInput(runInputJSON); err != nil {
				return err
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.PluginCLI.Execute(context.Background(), plugindto.ExecuteInput{
				PluginName: runPluginName,
				CommandID:  runCommandID,
				InputJSON:  runInputJSON,
				GoalID:     runGoalID,
				RootPath:   *rootPath,
				Cwd:        *rootPath,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plugin=%s command=%s exit=%d\n", out.PluginName, out.CommandID, out.ExitCode)
			if strings.TrimSpace(out.Stdout) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Stdout)
			}
			if strings.TrimSpace(out.Stderr) != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Stderr)
			}
			if strings.TrimSpace(out.OutputJSON) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&runPluginName, "plugin", "", "plugin name")
	runCmd.Flags().StringVar(&runCommandID, "command", "", "command id")
	runCmd.Flags().StringVar(&runInputJSON, "input-json", "", "JSON input payload")
	runCmd.Flags().StringVar(&runGoalID, "goal-id", "", "optional goal id")
	plugin.AddCommand(runCmd)

	var importPluginName, importCommandID, importInputJSON, importGoalID string
	importCmd := &cobra.Command{
		Use:   "import --plugin <name> --command <id> --goal-id <id>",
		Short: "Import day/value samples from a plugin into a goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(importPluginName) == "" || strings.TrimSpace(importCommandID) == "" || strings.TrimSpace(importGoalID) == "" {
				return fmt.Errorf("--plugin, --command, and --goal-id are required")
			}
			if err := validateJSONInput(importInputJSON); err != nil {
				return err
			}
			app, err := loadApp(*rootPath)
			if err != nil {
				return err
			}
			out, err := app.PluginCLI.Import(context.Background(), plugindto.ImportInput{
				PluginName: importPluginName,
				CommandID:  importCommandID,
				InputJSON:  importInputJSON,
				GoalID:     importGoalID,
				RootPath:   *rootPath,
				Cwd:        *rootPath,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d samples into %s\n", out.Recorded, out.GoalID)
			return nil
		},
	}
	importCmd.Flags().StringVar(&importPluginName, "plugin", "", "plugin name")
	importCmd.Flags().StringVar(&importCommandID, "command", "", "command id")
	importCmd.Flags().StringVar(&importInputJSON, "input-json", "", "JSON input payload")
	importCmd.Flags().StringVar(&importGoalID, "goal-id", "", "goal id to record into")
	plugin.AddCommand(importCmd)

	return plugin
}

func validateJSONInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if !json.Valid([]byte(input)) {
		return fmt.Errorf("--input-json must be valid JSON")
	}
	return nil
}
