package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "vitalog/internal/modules/goals/dto"
	"vitalog/internal/ui/components"
	"vitalog/internal/ui/theme"
)

type GoalsPort interface {
	List(ctx context.Context) ([]goalsdto.GoalOutput, error)
	Get(ctx context.Context, goalID string) (goalsdto.GoalDetailOutput, error)
	Increment(ctx context.Context, goalID string) (goalsdto.GoalOutput, error)
	Decrement(ctx context.Context, goalID string) (goalsdto.GoalOutput, error)
	SlideCurrent(ctx context.Context, input goalsdto.SetCurrentInput) error
}

type GoalsLoadedMsg struct {
	Goals []goalsdto.GoalOutput
	Err   error
}

type DetailLoadedMsg struct {
	Detail goalsdto.GoalDetailOutput
	Err    error
}

type NudgedMsg struct {
	Goal goalsdto.GoalOutput
	Err  error
}

type SlidMsg struct {
	Value float64
	Err   error
}

type goalItem struct {
	goal goalsdto.GoalOutput
}

func (i goalItem) Title() string { return i.goal.Name }
func (i goalItem) Description() string {
	return fmt.Sprintf("%.0f / %.0f %s", i.goal.Current, i.goal.Target, i.goal.Unit)
}
func (i goalItem) FilterValue() string { return i.goal.Name }

type Model struct {
	port    GoalsPort
	list    list.Model
	detail  goalsdto.GoalDetailOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool

	// slideValue is the locally tracked target of an in-flight slide;
	// commits settle in the background after the debounce window.
	slideValue float64
	sliding    bool

	width  int
	height int
}

func New(port GoalsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Goals"
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
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadGoalsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case GoalsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Goals — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Goals))
		for i, g := range msg.Goals {
			items[i] = goalItem{goal: g}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Goals) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Goals[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.sliding = false
			m.preview.SetContent(m.renderDetail())
		}

	case NudgedMsg:
		if msg.Err == nil && msg.Goal.ID != "" {
			cmds = append(cmds, m.loadGoalsCmd(), m.loadDetailCmd(msg.Goal.ID))
		}

	case SlidMsg:
		if msg.Err == nil {
			m.slideValue = msg.Value
			m.sliding = true
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.loading && m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "+":
				if id, ok := m.SelectedGoalID(); ok {
					cmds = append(cmds, m.nudgeCmd(id, +1))
				}
			case "-":
				if id, ok := m.SelectedGoalID(); ok {
					cmds = append(cmds, m.nudgeCmd(id, -1))
				}
			case "left":
				cmds = append(cmds, m.slideCmd(-1))
			case "right":
				cmds = append(cmds, m.slideCmd(+1))
			case "r":
				cmds = append(cmds, m.loadGoalsCmd())
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(goalItem); ok {
				m.sliding = false
				cmds = append(cmds, m.loadDetailCmd(item.goal.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading goals…")
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
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedGoalID returns the current selection's goal ID, if any.
func (m Model) SelectedGoalID() (string, bool) {
	if item, ok := m.list.SelectedItem().(goalItem); ok {
		return item.goal.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Refresh reloads the goal list, used after palette mutations and imports.
func (m Model) Refresh() tea.Cmd {
	return m.loadGoalsCmd()
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a goal to see details")
	}
	current := d.Current
	if m.sliding {
		current = m.slideValue
	}
	percent := 0.0
	if d.Target > 0 {
		percent = current / d.Target * 100
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Name) + "\n\n")
	sb.WriteString(components.ProgressBar(percent, 30) + fmt.Sprintf("  %.0f%%\n\n", percent))
	sb.WriteString(theme.Muted.Render("current:  ") + fmt.Sprintf("%.1f %s", current, d.Unit))
	if m.sliding {
		sb.WriteString(theme.Hot.Render("  (settling)"))
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("target:   ") + fmt.Sprintf("%.1f %s\n", d.Target, d.Unit))
	sb.WriteString(theme.Muted.Render("kind:     ") + d.Kind + "\n")
	sb.WriteString(theme.Muted.Render("category: ") + d.Category + "\n")

	if len(d.History) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("recent history") + "\n")
		start := len(d.History) - 7
		if start < 0 {
			start = 0
		}
		for _, point := range d.History[start:] {
			sb.WriteString(fmt.Sprintf("  %s  %.1f\n", point.Day, point.Value))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("+/-: nudge  ←/→: slide  r: refresh"))
	return sb.String()
}

func (m Model) loadGoalsCmd() tea.Cmd {
	return func() tea.Msg {
		goals, err := m.port.List(context.Background())
		return GoalsLoadedMsg{Goals: goals, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Get(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) nudgeCmd(id string, direction int) tea.Cmd {
	return func() tea.Msg {
		var goal goalsdto.GoalOutput
		var err error
		if direction > 0 {
			goal, err = m.port.Increment(context.Background(), id)
		} else {
			goal, err = m.port.Decrement(context.Background(), id)
		}
		return NudgedMsg{Goal: goal, Err: err}
	}
}

// slideCmd moves the tracked slide value by 5% of the target and hands
// it to the debounced setter; rapid presses coalesce into one commit.
func (m Model) slideCmd(direction int) tea.Cmd {
	d := m.detail
	if d.ID == "" || d.Target <= 0 {
		return nil
	}
	base := d.Current
	if m.sliding {
		base = m.slideValue
	}
	value := base + float64(direction)*d.Target*0.05
	if value < 0 {
		value = 0
	}
	return func() tea.Msg {
		err := m.port.SlideCurrent(context.Background(), goalsdto.SetCurrentInput{GoalID: d.ID, Value: value})
		return SlidMsg{Value: value, Err: err}
	}
}
