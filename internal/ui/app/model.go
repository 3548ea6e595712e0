package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	routinedto "limber/internal/modules/routine/dto"
	statsdto "limber/internal/modules/stats/dto"
	workoutdto "limber/internal/modules/workout/dto"
	"limber/internal/ui/theme"
	historyview "limber/internal/ui/views/history"
	homeview "limber/internal/ui/views/home"
	routinesview "limber/internal/ui/views/routines"
	workoutview "limber/internal/ui/views/workout"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type routinePort interface {
	ListRoutines(ctx context.Context) ([]routinedto.RoutineOutput, error)
	GetRoutine(ctx context.Context, id string) (routinedto.RoutineDetailOutput, error)
	DeleteRoutine(ctx context.Context, id string) error
}

type workoutPort interface {
	Start(ctx context.Context, routineID string) (workoutdto.StartOutput, error)
	RecordCompletion(ctx context.Context, sessionID, exerciseID string, reps, seconds int) (workoutdto.SessionOutput, error)
	Finish(ctx context.Context, sessionID string) (workoutdto.SessionOutput, error)
	Delete(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context) ([]workoutdto.SessionOutput, error)
	HasCompletedToday(ctx context.Context) (bool, error)
}

type statsPort interface {
	Overview(ctx context.Context) (statsdto.StatisticsOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabRoutines
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Home", "Routines", "History"}

// ─── async messages ───────────────────────────────────────────────────────────

type quickStartMsg struct {
	routineID string
	err       error
}

type routineDeletedMsg struct {
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Morning key.Binding
	Evening key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start workout")),
		Morning: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "morning routine")),
		Evening: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "evening routine")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter},
		{k.Morning, k.Evening, k.Delete},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing and the workout
// takeover. All business logic is delegated to port interfaces; all rendering
// is delegated to sub-views.
type Model struct {
	routines routinePort
	workouts workoutPort

	homeView    homeview.Model
	routineView routinesview.Model
	historyView historyview.Model
	workoutView workoutview.Model

	activeTab tabID
	inWorkout bool
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(routines routinePort, workouts workoutPort, stats statsPort) Model {
	return Model{
		routines:    routines,
		workouts:    workouts,
		homeView:    homeview.New(homePortBridge{stats: stats, workouts: workouts}),
		routineView: routinesview.New(routinePortBridge{p: routines}),
		historyView: historyview.New(historyPortBridge{p: workouts}),
		workoutView: workoutview.New(workoutPortBridge{p: workouts}),
		activeTab:   tabHome,
		keys:        defaultKeys(),
		help:        help.New(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.homeView.Init(),
		m.routineView.Init(),
		m.historyView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// A running workout owns all input until it reports back.
	if m.inWorkout {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.width = size.Width
			m.height = size.Height
			m.propagateSize()
		}
		if done, ok := msg.(workoutview.FinishedMsg); ok {
			m.inWorkout = false
			if done.Err != nil {
				m.status = "workout: " + done.Err.Error()
			} else if done.Session.Completed {
				m.status = "workout logged"
			} else {
				m.status = "workout abandoned"
			}
			cmds = append(cmds, m.homeView.Refresh(), m.historyView.Reload())
			return m, tea.Batch(cmds...)
		}
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.workoutView, cmd = m.workoutView.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case workoutview.StartedMsg:
		if msg.Err != nil {
			m.status = "start failed: " + msg.Err.Error()
			return m, nil
		}
		m.inWorkout = true
		m.status = "workout: " + msg.Out.RoutineName
		var cmd tea.Cmd
		m.workoutView, cmd = m.workoutView.Update(msg)
		return m, cmd

	case quickStartMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		return m, m.workoutView.Start(msg.routineID)

	case routineDeletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
		} else {
			m.status = "routine deleted"
			cmds = append(cmds, m.routineView.Reload())
		}

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
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case "m":
			if m.activeTab == tabHome {
				return m, m.quickStartCmd("morning")
			}
		case "e":
			if m.activeTab == tabHome {
				return m, m.quickStartCmd("evening")
			}
		case "enter":
			if m.activeTab == tabRoutines {
				if id, ok := m.routineView.SelectedRoutineID(); ok {
					return m, m.workoutView.Start(id)
				}
			}
		case "d":
			if m.activeTab == tabRoutines {
				if id, ok := m.routineView.SelectedRoutineID(); ok {
					return m, m.deleteRoutineCmd(id)
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, tabCmd = m.homeView.Update(msg)
	case tabRoutines:
		m.routineView, tabCmd = m.routineView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.inWorkout {
		return m.workoutView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabRoutines:
		return m.routineView.View()
	case tabHistory:
		return m.historyView.View()
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
	bar := "limber  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabRoutines:
		return m.routineView.Filtering()
	case tabHistory:
		return m.historyView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.routineView, _ = m.routineView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.workoutView, _ = m.workoutView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// ─── async commands ───────────────────────────────────────────────────────────

// quickStartCmd looks up the default routine of the given kind and reports
// its id back so the workout view can take over.
func (m Model) quickStartCmd(kind string) tea.Cmd {
	return func() tea.Msg {
		routines, err := m.routines.ListRoutines(context.Background())
		if err != nil {
			return quickStartMsg{err: err}
		}
		for _, routine := range routines {
			if routine.Kind == kind {
				return quickStartMsg{routineID: routine.ID}
			}
		}
		return quickStartMsg{err: errNoRoutine(kind)}
	}
}

func (m Model) deleteRoutineCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return routineDeletedMsg{err: m.routines.DeleteRoutine(context.Background(), id)}
	}
}

type errNoRoutine string

func (e errNoRoutine) Error() string { return "no " + string(e) + " routine found" }

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type routinePortBridge struct{ p routinePort }

func (b routinePortBridge) ListRoutines(ctx context.Context) ([]routinedto.RoutineOutput, error) {
	return b.p.ListRoutines(ctx)
}
func (b routinePortBridge) GetRoutine(ctx context.Context, id string) (routinedto.RoutineDetailOutput, error) {
	return b.p.GetRoutine(ctx, id)
}

type historyPortBridge struct{ p workoutPort }

func (b historyPortBridge) ListSessions(ctx context.Context) ([]workoutdto.SessionOutput, error) {
	return b.p.ListSessions(ctx)
}
func (b historyPortBridge) Delete(ctx context.Context, sessionID string) error {
	return b.p.Delete(ctx, sessionID)
}

type workoutPortBridge struct{ p workoutPort }

func (b workoutPortBridge) Start(ctx context.Context, input workoutdto.StartInput) (workoutdto.StartOutput, error) {
	return b.p.Start(ctx, input.RoutineID)
}
func (b workoutPortBridge) RecordCompletion(ctx context.Context, input workoutdto.CompletionInput) (workoutdto.SessionOutput, error) {
	return b.p.RecordCompletion(ctx, input.SessionID, input.ExerciseID, input.ActualReps, input.ActualSeconds)
}
func (b workoutPortBridge) Finish(ctx context.Context, sessionID string) (workoutdto.SessionOutput, error) {
	return b.p.Finish(ctx, sessionID)
}

type homePortBridge struct {
	stats    statsPort
	workouts workoutPort
}

func (b homePortBridge) Overview(ctx context.Context) (statsdto.StatisticsOutput, error) {
	return b.stats.Overview(ctx)
}
func (b homePortBridge) HasCompletedToday(ctx context.Context) (bool, error) {
	return b.workouts.HasCompletedToday(ctx)
}
