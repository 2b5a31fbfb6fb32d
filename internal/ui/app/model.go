package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "vitalog/internal/modules/goals/dto"
	nutritiondto "vitalog/internal/modules/nutrition/dto"
	plugindto "vitalog/internal/modules/plugin/dto"
	workoutsdto "vitalog/internal/modules/workouts/dto"
	apperrors "vitalog/internal/platform/errors"
	"vitalog/internal/ui/components"
	"vitalog/internal/ui/theme"
	dashboardview "vitalog/internal/ui/views/dashboard"
	goalsview "vitalog/internal/ui/views/goals"
	nutritionview "vitalog/internal/ui/views/nutrition"
	workoutsview "vitalog/internal/ui/views/workouts"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type goalsPort interface {
	Add(ctx context.Context, input goalsdto.AddGoalInput) (goalsdto.GoalOutput, error)
	List(ctx context.Context) ([]goalsdto.GoalOutput, error)
	Get(ctx context.Context, goalID string) (goalsdto.GoalDetailOutput, error)
	SetCurrent(ctx context.Context, input goalsdto.SetCurrentInput) (goalsdto.GoalOutput, error)
	Increment(ctx context.Context, goalID string) (goalsdto.GoalOutput, error)
	Decrement(ctx context.Context, goalID string) (goalsdto.GoalOutput, error)
	SlideCurrent(ctx context.Context, input goalsdto.SetCurrentInput) error
	Flush(ctx context.Context) error
	Reindex(ctx context.Context) error
}

type nutritionPort interface {
	Summary(ctx context.Context) (nutritiondto.SummaryOutput, error)
	AddMeal(ctx context.Context, input nutritiondto.AddMealInput) (nutritiondto.MealOutput, error)
}

type workoutsPort interface {
	ListPlans(ctx context.Context) ([]workoutsdto.PlanOutput, error)
	Start(ctx context.Context, input workoutsdto.StartInput) (workoutsdto.StartOutput, error)
	Finish(ctx context.Context, input workoutsdto.FinishInput) (workoutsdto.FinishOutput, error)
	Active(ctx context.Context) (workoutsdto.ActiveOutput, error)
	History(ctx context.Context) ([]workoutsdto.WorkoutOutput, error)
}

type pluginPort interface {
	Execute(ctx context.Context, input plugindto.ExecuteInput) (plugindto.ExecuteOutput, error)
	Import(ctx context.Context, input plugindto.ImportInput) (plugindto.ImportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabGoals
	tabNutrition
	tabWorkouts
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Goals", "Nutrition", "Workouts",
}

// ─── async messages ───────────────────────────────────────────────────────────

type activeWorkoutMsg struct {
	active workoutsdto.ActiveOutput
	err    error
}

type goalMutatedMsg struct {
	goal goalsdto.GoalOutput
	verb string
	err  error
}

type mealAddedMsg struct {
	meal nutritiondto.MealOutput
	err  error
}

type pluginRanMsg struct {
	out plugindto.ExecuteOutput
	err error
}

type samplesImportedMsg struct {
	out plugindto.ImportOutput
	err error
}

type reindexedMsg struct{ err error }

type flushedMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Nudge   key.Binding
	Slide   key.Binding
	Workout key.Binding
	Metric  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Nudge:   key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "nudge goal")),
		Slide:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "slide goal")),
		Workout: key.NewBinding(key.WithKeys("s", "f"), key.WithHelp("s/f", "start/finish workout")),
		Metric:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "weekly metric")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Metric},
		{k.Nudge, k.Slide, k.Workout},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the active
// workout banner, the global help overlay, and the command palette. All
// business logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	rootPath string

	// ports used at this orchestration level only
	goals     goalsPort
	nutrition nutritionPort
	workouts  workoutsPort
	plugin    pluginPort

	// sub-views (one per tab)
	dashView  dashboardview.Model
	goalsView goalsview.Model
	foodView  nutritionview.Model
	planView  workoutsview.Model

	// global UI state
	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	activeWorkout workoutsdto.ActiveOutput
	hasActive     bool
	status        string
	width         int
	height        int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	rootPath string,
	goals goalsPort,
	nutrition nutritionPort,
	workouts workoutsPort,
	plugin pluginPort,
	insights dashboardview.InsightsPort,
) Model {
	return Model{
		rootPath:  rootPath,
		goals:     goals,
		nutrition: nutrition,
		workouts:  workouts,
		plugin:    plugin,
		dashView:  dashboardview.New(insights),
		goalsView: goalsview.New(goalsPortBridge{p: goals}),
		foodView:  nutritionview.New(nutritionPortBridge{p: nutrition}),
		planView:  workoutsview.New(workoutsPortBridge{p: workouts}),
		activeTab: tabDashboard,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.goalsView.Init(),
		m.foodView.Init(),
		m.planView.Init(),
		m.loadActiveWorkoutCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case activeWorkoutMsg:
		if msg.err != nil {
			if msg.err != apperrors.ErrNoActiveWorkout {
				m.status = "active workout check: " + msg.err.Error()
			}
			m.hasActive = false
		} else {
			m.hasActive = true
			m.activeWorkout = msg.active
			m.status = "workout in progress: " + msg.active.PlanName
		}

	case goalMutatedMsg:
		if msg.err != nil {
			m.status = "goal " + msg.verb + " failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("goal %s: %s → %.1f", msg.verb, msg.goal.Name, msg.goal.Current)
			cmds = append(cmds, m.goalsView.Refresh())
		}

	case mealAddedMsg:
		if msg.err != nil {
			m.status = "meal add failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("logged %s (%.0f kcal)", msg.meal.Name, msg.meal.Calories)
			cmds = append(cmds, m.foodView.Refresh())
		}

	case pluginRanMsg:
		if msg.err != nil {
			m.status = "plugin: " + msg.err.Error()
		} else if msg.out.ExitCode != 0 {
			m.status = fmt.Sprintf("plugin exited %d: %s", msg.out.ExitCode, firstLine(msg.out.Stderr))
		} else {
			m.status = "plugin ok: " + firstLine(msg.out.OutputJSON)
		}

	case samplesImportedMsg:
		if msg.err != nil {
			m.status = "import failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("imported %d samples into %s", msg.out.Recorded, msg.out.GoalID)
			cmds = append(cmds, m.goalsView.Refresh())
		}

	case reindexedMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
		} else {
			m.status = "history reindexed"
		}

	case flushedMsg:
		return m, tea.Quit

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// Start/finish results bubble up through the top level so the active
	// workout banner stays correct regardless of which tab triggered them.
	case workoutsview.StartedMsg:
		if msg.Err == nil {
			m.hasActive = true
			m.activeWorkout = workoutsdto.ActiveOutput{
				WorkoutID: msg.Started.WorkoutID,
				PlanID:    msg.Started.PlanID,
				PlanName:  msg.Started.PlanName,
				StartedAt: msg.Started.StartedAt,
			}
		}
		var cmd tea.Cmd
		m.planView, cmd = m.planView.Update(msg)
		m.status = m.planView.Status()
		return m, cmd

	case workoutsview.FinishedMsg:
		if msg.Err == nil {
			m.hasActive = false
			m.activeWorkout = workoutsdto.ActiveOutput{}
		}
		var cmd tea.Cmd
		m.planView, cmd = m.planView.Update(msg)
		m.status = m.planView.Status()
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			// Let any pending debounced goal commit land before exit.
			return m, m.flushCmd()
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabGoals:
		m.goalsView, tabCmd = m.goalsView.Update(msg)
	case tabNutrition:
		m.foodView, tabCmd = m.foodView.Update(msg)
	case tabWorkouts:
		m.planView, tabCmd = m.planView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabGoals:
		return m.goalsView.View()
	case tabNutrition:
		return m.foodView.View()
	case tabWorkouts:
		return m.planView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "vitalog  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render("● "+m.activeWorkout.PlanName) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "goal:add":
		if len(parts) < 6 {
			m.status = "usage: goal:add <name> <kind> <target> <unit> <category>"
			return m, nil
		}
		target, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			m.status = "invalid target"
			return m, nil
		}
		m.activeTab = tabGoals
		return m, m.addGoalCmd(goalsdto.AddGoalInput{
			Name:     parts[1],
			Kind:     parts[2],
			Target:   target,
			Unit:     parts[4],
			Category: parts[5],
		})

	case "goal:set":
		if len(parts) < 2 {
			m.status = "usage: goal:set <value>"
			return m, nil
		}
		id, ok := m.goalsView.SelectedGoalID()
		if !ok {
			m.status = "no goal selected"
			return m, nil
		}
		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			m.status = "invalid value"
			return m, nil
		}
		m.activeTab = tabGoals
		return m, m.setGoalCmd(goalsdto.SetCurrentInput{GoalID: id, Value: value})

	case "meal:add":
		if len(parts) < 6 {
			m.status = "usage: meal:add <name> <kcal> <protein> <carbs> <fat>"
			return m, nil
		}
		macros := make([]float64, 4)
		for i, field := range parts[2:6] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				m.status = "invalid number: " + field
				return m, nil
			}
			macros[i] = v
		}
		m.activeTab = tabNutrition
		return m, m.addMealCmd(nutritiondto.AddMealInput{
			Name:     parts[1],
			Calories: macros[0],
			Protein:  macros[1],
			Carbs:    macros[2],
			Fat:      macros[3],
		})

	case "workout:start":
		if len(parts) < 2 {
			m.status = "usage: workout:start <plan-id>"
			return m, nil
		}
		m.activeTab = tabWorkouts
		return m, m.startWorkoutCmd(parts[1])

	case "workout:finish":
		notes := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		m.activeTab = tabWorkouts
		return m, m.finishWorkoutCmd(notes)

	case "plugin:exec":
		if len(parts) < 3 {
			m.status = "usage: plugin:exec <plugin> <command> [json]"
			return m, nil
		}
		prefix := parts[0] + " " + parts[1] + " " + parts[2]
		inputJSON := strings.TrimSpace(strings.TrimPrefix(input, prefix))
		return m, m.execPluginCmd(plugindto.ExecuteInput{
			PluginName: parts[1],
			CommandID:  parts[2],
			InputJSON:  inputJSON,
			RootPath:   m.rootPath,
			Cwd:        m.rootPath,
		})

	case "plugin:import":
		if len(parts) < 4 {
			m.status = "usage: plugin:import <plugin> <command> <goal-id> [json]"
			return m, nil
		}
		prefix := parts[0] + " " + parts[1] + " " + parts[2] + " " + parts[3]
		inputJSON := strings.TrimSpace(strings.TrimPrefix(input, prefix))
		return m, m.importPluginCmd(plugindto.ImportInput{
			PluginName: parts[1],
			CommandID:  parts[2],
			GoalID:     parts[3],
			InputJSON:  inputJSON,
			RootPath:   m.rootPath,
			Cwd:        m.rootPath,
		})

	case "reindex":
		return m, m.reindexCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabGoals:
		return m.goalsView.Filtering()
	case tabWorkouts:
		return m.planView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
	m.foodView, _ = m.foodView.Update(sz)
	m.planView, _ = m.planView.Update(sz)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:60] + "…"
	}
	return s
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadActiveWorkoutCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.workouts.Active(context.Background())
		return activeWorkoutMsg{active: active, err: err}
	}
}

func (m Model) addGoalCmd(input goalsdto.AddGoalInput) tea.Cmd {
	return func() tea.Msg {
		goal, err := m.goals.Add(context.Background(), input)
		return goalMutatedMsg{goal: goal, verb: "added", err: err}
	}
}

func (m Model) setGoalCmd(input goalsdto.SetCurrentInput) tea.Cmd {
	return func() tea.Msg {
		goal, err := m.goals.SetCurrent(context.Background(), input)
		return goalMutatedMsg{goal: goal, verb: "set", err: err}
	}
}

func (m Model) addMealCmd(input nutritiondto.AddMealInput) tea.Cmd {
	return func() tea.Msg {
		meal, err := m.nutrition.AddMeal(context.Background(), input)
		return mealAddedMsg{meal: meal, err: err}
	}
}

func (m Model) startWorkoutCmd(planID string) tea.Cmd {
	return func() tea.Msg {
		started, err := m.workouts.Start(context.Background(), workoutsdto.StartInput{PlanID: planID})
		return workoutsview.StartedMsg{Started: started, Err: err}
	}
}

func (m Model) finishWorkoutCmd(notes string) tea.Cmd {
	return func() tea.Msg {
		finished, err := m.workouts.Finish(context.Background(), workoutsdto.FinishInput{Notes: notes})
		return workoutsview.FinishedMsg{Finished: finished, Err: err}
	}
}

func (m Model) execPluginCmd(input plugindto.ExecuteInput) tea.Cmd {
	return func() tea.Msg {
		if m.plugin == nil {
			return pluginRanMsg{err: fmt.Errorf("plugin adapter not configured")}
		}
		out, err := m.plugin.Execute(context.Background(), input)
		return pluginRanMsg{out: out, err: err}
	}
}

func (m Model) importPluginCmd(input plugindto.ImportInput) tea.Cmd {
	return func() tea.Msg {
		if m.plugin == nil {
			return samplesImportedMsg{err: fmt.Errorf("plugin adapter not configured")}
		}
		out, err := m.plugin.Import(context.Background(), input)
		return samplesImportedMsg{out: out, err: err}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		return reindexedMsg{err: m.goals.Reindex(context.Background())}
	}
}

func (m Model) flushCmd() tea.Cmd {
	return func() tea.Msg {
		return flushedMsg{err: m.goals.Flush(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type goalsPortBridge struct{ p goalsPort }

func (b goalsPortBridge) List(ctx context.Context) ([]goalsdto.GoalOutput, error) {
	return b.p.List(ctx)
}
func (b goalsPortBridge) Get(ctx context.Context, id string) (goalsdto.GoalDetailOutput, error) {
	return b.p.Get(ctx, id)
}
func (b goalsPortBridge) Increment(ctx context.Context, id string) (goalsdto.GoalOutput, error) {
	return b.p.Increment(ctx, id)
}
func (b goalsPortBridge) Decrement(ctx context.Context, id string) (goalsdto.GoalOutput, error) {
	return b.p.Decrement(ctx, id)
}
func (b goalsPortBridge) SlideCurrent(ctx context.Context, input goalsdto.SetCurrentInput) error {
	return b.p.SlideCurrent(ctx, input)
}

type nutritionPortBridge struct{ p nutritionPort }

func (b nutritionPortBridge) Summary(ctx context.Context) (nutritiondto.SummaryOutput, error) {
	return b.p.Summary(ctx)
}
func (b nutritionPortBridge) AddMeal(ctx context.Context, input nutritiondto.AddMealInput) (nutritiondto.MealOutput, error) {
	return b.p.AddMeal(ctx, input)
}

type workoutsPortBridge struct{ p workoutsPort }

func (b workoutsPortBridge) ListPlans(ctx context.Context) ([]workoutsdto.PlanOutput, error) {
	return b.p.ListPlans(ctx)
}
func (b workoutsPortBridge) Start(ctx context.Context, input workoutsdto.StartInput) (workoutsdto.StartOutput, error) {
	return b.p.Start(ctx, input)
}
func (b workoutsPortBridge) Finish(ctx context.Context, input workoutsdto.FinishInput) (workoutsdto.FinishOutput, error) {
	return b.p.Finish(ctx, input)
}
func (b workoutsPortBridge) Active(ctx context.Context) (workoutsdto.ActiveOutput, error) {
	return b.p.Active(ctx)
}
func (b workoutsPortBridge) History(ctx context.Context) ([]workoutsdto.WorkoutOutput, error) {
	return b.p.History(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
