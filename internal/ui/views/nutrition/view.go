package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	nutritiondto "vitalog/internal/modules/nutrition/dto"
	"vitalog/internal/ui/components"
	"vitalog/internal/ui/theme"
)

type NutritionPort interface {
	Summary(ctx context.Context) (nutritiondto.SummaryOutput, error)
	AddMeal(ctx context.Context, input nutritiondto.AddMealInput) (nutritiondto.MealOutput, error)
}

type SummaryLoadedMsg struct {
	Summary nutritiondto.SummaryOutput
	Err     error
}

type Model struct {
	port    NutritionPort
	summary nutritiondto.SummaryOutput
	meals   viewport.Model
	spinner spinner.Model
	loading bool
	loadErr error

	width  int
	height int
}

func New(port NutritionPort) Model {
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
		meals:   vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSummaryCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.meals.Width = m.width - 6
		m.meals.Height = m.height - 12

	case SummaryLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.summary = msg.Summary
			m.meals.SetContent(m.renderMeals())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "r" {
			cmds = append(cmds, m.loadSummaryCmd())
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.meals, cmd = m.meals.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading today's log…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("nutrition unavailable: "+m.loadErr.Error()))
	}

	macros := theme.Pane.Width(m.width - 6).Render(m.renderMacros())
	log := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 6).
		Render(m.meals.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, macros, log))
}

// Refresh reloads the summary, used after a palette meal:add.
func (m Model) Refresh() tea.Cmd {
	return m.loadSummaryCmd()
}

func (m Model) renderMacros() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today vs targets") + "\n")
	sb.WriteString(m.macroLine("calories", s.Calories, "kcal"))
	sb.WriteString(m.macroLine("protein", s.Protein, "g"))
	sb.WriteString(m.macroLine("carbs", s.Carbs, "g"))
	sb.WriteString(m.macroLine("fat", s.Fat, "g"))
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) macroLine(name string, macro nutritiondto.MacroOutput, unit string) string {
	return fmt.Sprintf("%-9s %s %5.0f/%.0f %s\n",
		name, components.ProgressBar(macro.Percent, 24), macro.Current, macro.Target, unit)
}

func (m Model) renderMeals() string {
	if len(m.summary.Meals) == 0 {
		return theme.Muted.Render("No meals logged today. Use the palette: meal:add <name> <kcal> <protein> <carbs> <fat>")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Meals") + "\n")
	for _, meal := range m.summary.Meals {
		sb.WriteString(fmt.Sprintf("%s  %-24s %5.0f kcal  P %3.0f  C %3.0f  F %3.0f\n",
			theme.Muted.Render(meal.LoggedAt.Format("15:04")),
			meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat))
	}
	return sb.String()
}

func (m Model) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: summary, Err: err}
	}
}
