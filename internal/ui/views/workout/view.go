package workout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "limber/internal/modules/catalog/dto"
	workoutdto "limber/internal/modules/workout/dto"
	"limber/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type WorkoutPort interface {
	Start(ctx context.Context, input workoutdto.StartInput) (workoutdto.StartOutput, error)
	RecordCompletion(ctx context.Context, input workoutdto.CompletionInput) (workoutdto.SessionOutput, error)
	Finish(ctx context.Context, sessionID string) (workoutdto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StartedMsg struct {
	Out workoutdto.StartOutput
	Err error
}

type recordedMsg struct {
	Err error
}

// FinishedMsg bubbles up to the app model when the summary screen is
// dismissed or the workout is abandoned mid-run.
type FinishedMsg struct {
	Session workoutdto.SessionOutput
	Err     error
}

type finishSavedMsg struct {
	Session workoutdto.SessionOutput
	Err     error
}

// tickMsg carries the generation it was armed for. Pausing or advancing an
// exercise bumps the generation, so a tick that was already in flight when
// that happened arrives stale and must not count a second.
type tickMsg struct {
	gen int
}

// ─── model ───────────────────────────────────────────────────────────────────

type phase int

const (
	phaseStarting phase = iota
	phaseRunning
	phaseSummary
)

type Model struct {
	port WorkoutPort

	phase    phase
	out      workoutdto.StartOutput
	index    int
	elapsed  int
	reps     int
	gen      int
	paused   bool
	err      error
	finished workoutdto.SessionOutput
	skipped  int
	bar      progress.Model
	width    int
	height   int
}

func New(port WorkoutPort) Model {
	bar := progress.New(progress.WithDefaultGradient())
	return Model{port: port, bar: bar}
}

// Start kicks off a session for the given routine. The returned command must
// be dispatched by the app model, which then routes all input here until a
// FinishedMsg comes back.
func (m Model) Start(routineID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), workoutdto.StartInput{RoutineID: routineID})
		return StartedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = minInt(m.width-8, 50)

	case StartedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, func() tea.Msg { return FinishedMsg{Err: msg.Err} }
		}
		m.phase = phaseRunning
		m.out = msg.Out
		m.index = 0
		m.skipped = 0
		m.err = nil
		m.resetExercise()
		if len(m.out.Playlist) == 0 {
			return m.finishNow()
		}
		return m, m.armTick()

	case tickMsg:
		if msg.gen != m.gen || m.paused || m.phase != phaseRunning {
			return m, nil
		}
		if m.current().Mode != "duration" {
			return m, nil
		}
		m.elapsed++
		return m, m.tickCmd()

	case recordedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		}

	case finishSavedMsg:
		m.phase = phaseSummary
		m.finished = msg.Session
		m.err = msg.Err

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.phase == phaseSummary {
		switch msg.String() {
		case "enter", "q", "esc":
			finished := m.finished
			return m, func() tea.Msg { return FinishedMsg{Session: finished} }
		}
		return m, nil
	}
	if m.phase != phaseRunning {
		return m, nil
	}

	switch msg.String() {
	case " ":
		m.paused = !m.paused
		m.gen++
		if !m.paused {
			return m, m.armTick()
		}
	case "+", "=":
		if m.current().Mode == "reps" {
			m.reps++
		}
	case "-":
		if m.current().Mode == "reps" && m.reps > 0 {
			m.reps--
		}
	case "enter", "c":
		return m.completeCurrent()
	case "s":
		m.skipped++
		return m.advance()
	case "q", "esc":
		// Abandoned sessions stay in history unfinished; stats count them
		// against the completion rate.
		return m, func() tea.Msg { return FinishedMsg{} }
	}
	return m, nil
}

func (m Model) completeCurrent() (Model, tea.Cmd) {
	exercise := m.current()
	input := workoutdto.CompletionInput{
		SessionID:  m.out.SessionID,
		ExerciseID: exercise.ID,
	}
	if exercise.Mode == "reps" {
		input.ActualReps = m.reps
	} else {
		input.ActualSeconds = m.elapsed
	}
	record := func() tea.Msg {
		_, err := m.port.RecordCompletion(context.Background(), input)
		return recordedMsg{Err: err}
	}
	next, cmd := m.advance()
	return next, tea.Batch(record, cmd)
}

func (m Model) advance() (Model, tea.Cmd) {
	if m.index+1 >= len(m.out.Playlist) {
		return m.finishNow()
	}
	m.index++
	m.resetExercise()
	return m, m.armTick()
}

func (m Model) finishNow() (Model, tea.Cmd) {
	sessionID := m.out.SessionID
	m.gen++
	return m, func() tea.Msg {
		session, err := m.port.Finish(context.Background(), sessionID)
		return finishSavedMsg{Session: session, Err: err}
	}
}

func (m *Model) resetExercise() {
	m.elapsed = 0
	m.paused = false
	m.gen++
	if m.index < len(m.out.Playlist) {
		m.reps = m.out.Playlist[m.index].TargetReps
	}
}

// armTick starts the per-second counter only when there is something to
// count: a running, unpaused, duration-based exercise. Rep-based exercises
// have no timer.
func (m Model) armTick() tea.Cmd {
	if m.phase != phaseRunning || m.paused {
		return nil
	}
	if m.current().Mode != "duration" {
		return nil
	}
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) current() catalogdto.ExerciseOutput {
	return m.out.Playlist[m.index]
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.phase {
	case phaseSummary:
		return m.summaryView()
	case phaseRunning:
		return m.runningView()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Starting…")
}

func (m Model) runningView() string {
	exercise := m.current()

	var sb strings.Builder
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s  ·  exercise %d of %d",
		m.out.RoutineName, m.index+1, len(m.out.Playlist))) + "\n\n")
	sb.WriteString(theme.Title.Render(exercise.Name) + "\n\n")

	if exercise.Mode == "reps" {
		sb.WriteString(fmt.Sprintf("%s%d  (target %d)\n", theme.Muted.Render("reps: "), m.reps, exercise.TargetReps))
	} else {
		remaining := exercise.TargetSeconds - m.elapsed
		if remaining <= 0 {
			sb.WriteString(theme.Good.Render("hold complete") + "  " + formatClock(m.elapsed) + "\n")
		} else {
			sb.WriteString(theme.Hot.Render(formatClock(remaining)) + theme.Muted.Render(" remaining") + "\n")
		}
		ratio := float64(m.elapsed) / float64(maxInt(exercise.TargetSeconds, 1))
		sb.WriteString(m.bar.ViewAs(minFloat(ratio, 1)) + "\n")
	}
	if m.paused {
		sb.WriteString("\n" + theme.Hot.Render("⏸ paused") + "\n")
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Bad.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: done  s: skip  space: pause  +/-: reps  q: abandon"))

	pane := theme.PaneActive.Width(minInt(m.width-4, 64)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) summaryView() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Workout complete") + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Bad.Render(m.err.Error()) + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("%s%d min\n", theme.Muted.Render("duration:  "), m.finished.DurationMinutes))
	sb.WriteString(fmt.Sprintf("%s%d of %d\n", theme.Muted.Render("completed: "),
		len(m.finished.Completions), len(m.out.Playlist)))
	if m.skipped > 0 {
		sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("skipped:   "), m.skipped))
	}
	sb.WriteString("\n" + theme.Good.Render("✓ logged") + "\n")
	sb.WriteString("\n" + theme.Muted.Render("enter: back"))

	pane := theme.Pane.Width(minInt(m.width-4, 64)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
