package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	workoutsdto "vitalog/internal/modules/workouts/dto"
	apperrors "vitalog/internal/platform/errors"
	"vitalog/internal/ui/theme"
)

type WorkoutsPort interface {
	ListPlans(ctx context.Context) ([]workoutsdto.PlanOutput, error)
	Start(ctx context.Context, input workoutsdto.StartInput) (workoutsdto.StartOutput, error)
	Finish(ctx context.Context, input workoutsdto.FinishInput) (workoutsdto.FinishOutput, error)
	Active(ctx context.Context) (workoutsdto.ActiveOutput, error)
	History(ctx context.Context) ([]workoutsdto.WorkoutOutput, error)
}

type PlansLoadedMsg struct {
	Plans   []workoutsdto.PlanOutput
	Active  workoutsdto.ActiveOutput
	HasLive bool
	History []workoutsdto.WorkoutOutput
	Err     error
}

type StartedMsg struct {
	Started workoutsdto.StartOutput
	Err     error
}

type FinishedMsg struct {
	Finished workoutsdto.FinishOutput
	Err      error
}

type planItem struct {
	plan workoutsdto.PlanOutput
}

func (i planItem) Title() string { return i.plan.Name }
func (i planItem) Description() string {
	return fmt.Sprintf("%s · ~%d min · ~%.0f kcal", i.plan.Focus, i.plan.Minutes, i.plan.Calories)
}
func (i planItem) FilterValue() string { return i.plan.Name }

type Model struct {
	port    WorkoutsPort
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool

	active  workoutsdto.ActiveOutput
	hasLive bool
	history []workoutsdto.WorkoutOutput
	status  string

	width  int
	height int
}

func New(port WorkoutsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Workout plans"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PlansLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Plans))
		for i, p := range msg.Plans {
			items[i] = planItem{plan: p}
		}
		m.active = msg.Active
		m.hasLive = msg.HasLive
		m.history = msg.History
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case StartedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrActiveWorkoutExists) {
				m.status = "a workout is already running, finish it first"
			} else {
				m.status = msg.Err.Error()
			}
		} else {
			m.status = "started " + msg.Started.PlanName
		}
		cmds = append(cmds, m.loadCmd())

	case FinishedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNoActiveWorkout) {
				m.status = "nothing to finish"
			} else {
				m.status = msg.Err.Error()
			}
		} else {
			m.status = fmt.Sprintf("finished %s: %d min, %.0f kcal",
				msg.Finished.PlanName, msg.Finished.DurationMin, msg.Finished.Calories)
		}
		cmds = append(cmds, m.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.loading && m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "s":
				if item, ok := m.list.SelectedItem().(planItem); ok {
					cmds = append(cmds, m.startCmd(item.plan.ID))
				}
			case "f":
				cmds = append(cmds, m.finishCmd(""))
			case "r":
				cmds = append(cmds, m.loadCmd())
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading plans…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Status returns the most recent start/finish outcome line.
func (m Model) Status() string {
	return m.status
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	var sb strings.Builder

	if m.hasLive {
		sb.WriteString(theme.Hot.Render("● LIVE ") +
			fmt.Sprintf("%s since %s", m.active.PlanName, m.active.StartedAt.Format("15:04")) +
			"\n" + theme.Muted.Render("f: finish") + "\n\n")
	}

	if item, ok := m.list.SelectedItem().(planItem); ok {
		p := item.plan
		sb.WriteString(theme.Title.Render(p.Name) + "\n")
		sb.WriteString(theme.Muted.Render("focus:    ") + p.Focus + "\n")
		sb.WriteString(theme.Muted.Render("estimate: ") + fmt.Sprintf("%d min, %.0f kcal\n", p.Minutes, p.Calories))
		if len(p.Exercises) > 0 {
			sb.WriteString("\n")
			for _, ex := range p.Exercises {
				sb.WriteString(fmt.Sprintf("  %-24s %d × %d\n", ex.Name, ex.Sets, ex.Reps))
			}
		}
		if !m.hasLive {
			sb.WriteString("\n" + theme.Muted.Render("s: start this plan") + "\n")
		}
	}

	if len(m.history) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("recent sessions") + "\n")
		shown := m.history
		if len(shown) > 5 {
			shown = shown[len(shown)-5:]
		}
		for i := len(shown) - 1; i >= 0; i-- {
			w := shown[i]
			done := theme.Done.Render("✓")
			sb.WriteString(fmt.Sprintf("  %s %s  %s  %d min  %.0f kcal\n",
				done, w.StartedAt.Format("01-02"), w.PlanName, w.DurationMin, w.Calories))
		}
	}

	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		plans, err := m.port.ListPlans(context.Background())
		if err != nil {
			return PlansLoadedMsg{Err: err}
		}
		history, err := m.port.History(context.Background())
		if err != nil {
			return PlansLoadedMsg{Err: err}
		}
		active, err := m.port.Active(context.Background())
		if err != nil {
			if errors.Is(err, apperrors.ErrNoActiveWorkout) {
				return PlansLoadedMsg{Plans: plans, History: history}
			}
			return PlansLoadedMsg{Err: err}
		}
		return PlansLoadedMsg{Plans: plans, Active: active, HasLive: true, History: history}
	}
}

func (m Model) startCmd(planID string) tea.Cmd {
	return func() tea.Msg {
		started, err := m.port.Start(context.Background(), workoutsdto.StartInput{PlanID: planID})
		return StartedMsg{Started: started, Err: err}
	}
}

func (m Model) finishCmd(notes string) tea.Cmd {
	return func() tea.Msg {
		finished, err := m.port.Finish(context.Background(), workoutsdto.FinishInput{Notes: notes})
		return FinishedMsg{Finished: finished, Err: err}
	}
}
