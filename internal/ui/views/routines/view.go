package routines

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	routinedto "limber/internal/modules/routine/dto"
	"limber/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RoutinePort interface {
	ListRoutines(ctx context.Context) ([]routinedto.RoutineOutput, error)
	GetRoutine(ctx context.Context, id string) (routinedto.RoutineDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RoutinesLoadedMsg struct {
	Routines []routinedto.RoutineOutput
	Err      error
}

type DetailLoadedMsg struct {
	Detail routinedto.RoutineDetailOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type routineItem struct {
	routine routinedto.RoutineOutput
}

func (i routineItem) Title() string { return i.routine.Name }
func (i routineItem) Description() string {
	return fmt.Sprintf("%s  %d exercise(s)", i.routine.Kind, i.routine.ExerciseCount)
}
func (i routineItem) FilterValue() string { return i.routine.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    RoutinePort
	list    list.Model
	detail  routinedto.RoutineDetailOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port RoutinePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Routines"
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
	return tea.Batch(m.loadRoutinesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case RoutinesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Routines: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Routines))
		for i, r := range msg.Routines {
			items[i] = routineItem{routine: r}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Routines) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Routines[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(routineItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.routine.ID))
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
			m.spinner.View()+" Loading routines…")
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

// SelectedRoutineID returns the current selection's routine ID, if any.
func (m Model) SelectedRoutineID() (string, bool) {
	if item, ok := m.list.SelectedItem().(routineItem); ok {
		return item.routine.ID, true
	}
	return "", false
}

// SelectedRoutineName returns the current selection's name.
func (m Model) SelectedRoutineName() string {
	if item, ok := m.list.SelectedItem().(routineItem); ok {
		return item.routine.Name
	}
	return ""
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refetches the routine list, used after create/delete.
func (m Model) Reload() tea.Cmd {
	return m.loadRoutinesCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

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
		return theme.Muted.Render("Select a routine to see its plan")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("kind:     ") + d.Kind + "\n")
	sb.WriteString(fmt.Sprintf("%s~%d min\n", theme.Muted.Render("estimate: "), d.EstimateMinutes))
	sb.WriteString("\n")
	for i, exercise := range d.Exercises {
		target := fmt.Sprintf("%ds", exercise.TargetSeconds)
		if exercise.Mode == "reps" {
			target = fmt.Sprintf("%d reps", exercise.TargetReps)
		}
		sb.WriteString(fmt.Sprintf("%2d. %s  %s\n", i+1, exercise.Name, theme.Muted.Render(target)))
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: start workout  d: delete (custom only)"))
	return sb.String()
}

func (m Model) loadRoutinesCmd() tea.Cmd {
	return func() tea.Msg {
		routines, err := m.port.ListRoutines(context.Background())
		return RoutinesLoadedMsg{Routines: routines, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.GetRoutine(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
