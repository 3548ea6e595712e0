package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "limber/internal/modules/stats/dto"
	"limber/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HomePort interface {
	Overview(ctx context.Context) (statsdto.StatisticsOutput, error)
	HasCompletedToday(ctx context.Context) (bool, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Stats     statsdto.StatisticsOutput
	DoneToday bool
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      HomePort
	stats     statsdto.StatisticsOutput
	doneToday bool
	spinner   spinner.Model
	loading   bool
	err       error
	width     int
	height    int
}

func New(port HomePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case OverviewLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.doneToday = msg.DoneToday
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading…")
	}
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("stats: "+m.err.Error()))
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("limber") + "\n\n")
	if m.doneToday {
		sb.WriteString(theme.Good.Render("✓ routine done today") + "\n\n")
	} else {
		sb.WriteString(theme.Hot.Render("○ nothing logged yet today") + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("%s%d day(s)\n", theme.Muted.Render("current streak: "), m.stats.CurrentStreak))
	sb.WriteString(fmt.Sprintf("%s%d day(s)\n", theme.Muted.Render("longest streak: "), m.stats.LongestStreak))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("total sessions: "), m.stats.TotalSessions))
	sb.WriteString(fmt.Sprintf("%s%.0f%%\n", theme.Muted.Render("completion:     "), m.stats.CompletionRate*100))
	if !m.stats.LastSessionDate.IsZero() {
		sb.WriteString(theme.Muted.Render("last session:   ") + m.stats.LastSessionDate.Format("Mon Jan 2 15:04") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("m: morning routine  e: evening routine  tab: switch"))

	pane := theme.Pane.Width(minInt(m.width-4, 60)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// Refresh reloads the overview, used after a workout finishes.
func (m Model) Refresh() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.port.Overview(context.Background())
		if err != nil {
			return OverviewLoadedMsg{Err: err}
		}
		done, err := m.port.HasCompletedToday(context.Background())
		return OverviewLoadedMsg{Stats: stats, DoneToday: done, Err: err}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
