package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "vitalog/internal/modules/insights/dto"
	"vitalog/internal/ui/components"
	"vitalog/internal/ui/theme"
)

type InsightsPort interface {
	TodayStats(ctx context.Context) (insightsdto.TodayStatsOutput, error)
	Weekly(ctx context.Context, kind string, ref time.Time) (insightsdto.WeeklyOutput, error)
	MacroStatus(ctx context.Context) (insightsdto.MacroStatusOutput, error)
}

type StatsLoadedMsg struct {
	Stats  insightsdto.TodayStatsOutput
	Macros insightsdto.MacroStatusOutput
	Err    error
}

type WeeklyLoadedMsg struct {
	Weekly insightsdto.WeeklyOutput
	Err    error
}

// weeklyKinds is the cycle order for the "m" key.
var weeklyKinds = []string{"steps", "water", "sleep", "calories", "protein", "active_minutes"}

type Model struct {
	port InsightsPort

	stats   insightsdto.TodayStatsOutput
	macros  insightsdto.MacroStatusOutput
	weekly  insightsdto.WeeklyOutput
	kindIdx int
	loadErr error

	spinner spinner.Model
	loading bool

	width  int
	height int
}

func New(port InsightsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatsCmd(), m.loadWeeklyCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatsLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.macros = msg.Macros
		}

	case WeeklyLoadedMsg:
		if msg.Err == nil {
			m.weekly = msg.Weekly
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			m.kindIdx = (m.kindIdx + 1) % len(weeklyKinds)
			return m, m.loadWeeklyCmd()
		case "r":
			return m, tea.Batch(m.loadStatsCmd(), m.loadWeeklyCmd())
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Crunching today's numbers…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("dashboard unavailable: "+m.loadErr.Error()))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard(m.stats.Steps),
		m.statCard(m.stats.ActiveMinutes),
		m.statCard(m.stats.Calories),
		m.sleepCard(),
	)

	sections := []string{
		cards,
		m.weeklyPane(),
		m.macroPane(),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) statCard(s insightsdto.StatOutput) string {
	label := s.Label
	if label == "" {
		label = "untracked"
	}
	body := theme.Title.Render(label) + "\n" +
		fmt.Sprintf("%.0f / %.0f %s\n", s.Current, s.Target, s.Unit) +
		components.ProgressBar(s.Percent, m.cardWidth()-6)
	return m.cardStyle(s.Percent >= 100).Render(body)
}

func (m Model) sleepCard() string {
	score := m.stats.SleepScore
	body := theme.Title.Render("Sleep score") + "\n" +
		fmt.Sprintf("%d / 100\n", score) +
		components.ProgressBar(float64(score), m.cardWidth()-6)
	return m.cardStyle(score >= 100).Render(body)
}

func (m Model) weeklyPane() string {
	w := m.weekly
	var sb strings.Builder
	title := fmt.Sprintf("Last 7 days — %s", weeklyKinds[m.kindIdx])
	sb.WriteString(theme.Title.Render(title) + "\n")
	if len(w.Points) == 0 {
		sb.WriteString(theme.Muted.Render("no history yet"))
	} else {
		values := make([]float64, len(w.Points))
		for i, p := range w.Points {
			values[i] = p.Value
		}
		sb.WriteString(components.Sparkline(values) + "\n")
		for _, p := range w.Points {
			sb.WriteString(theme.Muted.Render(p.Day[5:]) + " ")
		}
		if w.Target > 0 {
			sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("target %.0f %s/day", w.Target, w.Unit)))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("m: next metric  r: refresh"))
	return theme.Pane.Width(m.width - 6).Render(sb.String())
}

func (m Model) macroPane() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today's macros") + "\n")
	sb.WriteString(m.macroLine("calories", m.macros.Calories, "kcal"))
	sb.WriteString(m.macroLine("protein", m.macros.Protein, "g"))
	sb.WriteString(m.macroLine("carbs", m.macros.Carbs, "g"))
	sb.WriteString(m.macroLine("fat", m.macros.Fat, "g"))
	return theme.Pane.Width(m.width - 6).Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) macroLine(name string, line insightsdto.MacroLine, unit string) string {
	return fmt.Sprintf("%-9s %s %5.0f/%.0f %s\n",
		name, components.ProgressBar(line.Percent, 20), line.Current, line.Target, unit)
}

func (m Model) cardWidth() int {
	w := (m.width - 4) / 4
	if w < 18 {
		w = 18
	}
	return w
}

func (m Model) cardStyle(done bool) lipgloss.Style {
	style := theme.Pane.Width(m.cardWidth() - 2)
	if done {
		style = theme.PaneActive.Width(m.cardWidth() - 2)
	}
	return style
}

func (m Model) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.port.TodayStats(context.Background())
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		macros, err := m.port.MacroStatus(context.Background())
		return StatsLoadedMsg{Stats: stats, Macros: macros, Err: err}
	}
}

func (m Model) loadWeeklyCmd() tea.Cmd {
	kind := weeklyKinds[m.kindIdx]
	return func() tea.Msg {
		weekly, err := m.port.Weekly(context.Background(), kind, time.Time{})
		return WeeklyLoadedMsg{Weekly: weekly, Err: err}
	}
}
