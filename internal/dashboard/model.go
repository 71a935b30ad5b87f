package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/vigil/internal/config"
	"github.com/rileyhilliard/vigil/internal/status"
)

// Mode is the display state machine: either the live dashboard or the
// idle screensaver. The screensaver is the sole authority on whether
// dashboard output is visible.
type Mode int

const (
	ModeDashboard Mode = iota
	ModeScreensaver
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyScreensaver = "s"
)

// tickMsg paces the foreground loop: mailbox polling, idle tracking, and
// animation frames all hang off this one message.
type tickMsg time.Time

// Model is the Bubble Tea model for the vigil dashboard.
type Model struct {
	cfg     *config.Config
	mailbox *status.Mailbox
	rain    *RainEngine
	spin    spinner.Model

	// snapshot is the last applied *valid* snapshot; statusLine also
	// reflects invalid cycles (error text) so fetch trouble is visible.
	snapshot     status.Snapshot
	statusLine   string
	haveSnapshot bool

	mode      Mode
	lastInput time.Time

	width, height int
	quitting      bool

	tickEvery time.Duration

	// now is swappable so tests can drive the idle timer.
	now func() time.Time
}

// NewModel creates the dashboard model. The mailbox is the only link to
// the background poller.
func NewModel(cfg *config.Config, mailbox *status.Mailbox) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		cfg:        cfg,
		mailbox:    mailbox,
		rain:       NewRainEngine(cfg.Rain, termenv.ColorProfile()),
		spin:       sp,
		statusLine: "contacting status feed",
		mode:       ModeDashboard,
		tickEvery:  time.Second / time.Duration(cfg.Rain.FPS),
		now:        time.Now,
		lastInput:  time.Now(),
	}
}

// Init starts the animation tick and the pre-snapshot spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.spin.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			return m, tea.Quit

		case KeyScreensaver:
			// manual toggle, mostly for previewing the rain
			if m.mode == ModeDashboard {
				m.enterScreensaver()
			} else {
				m.exitScreensaver()
			}
			return m, nil

		case KeyRefresh:
			m.touch()
			m.pump()
			return m, nil

		default:
			m.touch()
			return m, nil
		}

	case tea.MouseMsg:
		m.touch()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == ModeScreensaver {
			// resizing resets the session; stale grids would be misaligned
			m.rain.Activate(m.width, m.height)
		}
		return m, nil

	case spinner.TickMsg:
		if m.haveSnapshot {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tickMsg:
		// Mailbox first: a change-triggered exit must land before this
		// frame's animation advances.
		m.pump()
		m.maybeIdle()
		if m.mode == ModeScreensaver {
			m.rain.Tick(m.overallSeverity())
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == ModeScreensaver {
		return m.renderScreensaver()
	}
	return m.renderDashboard()
}

// tickCmd schedules the next animation/poll tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// touch registers user input: it resets the idle reference and wakes the
// screensaver. Repeated input while already on the dashboard only moves
// the idle reference.
func (m *Model) touch() {
	m.lastInput = m.now()
	if m.mode == ModeScreensaver {
		m.exitScreensaver()
	}
}

// pump drains the mailbox. Data is applied regardless of mode so the
// change-detection wake condition always compares against fresh state;
// only rendering is suppressed while the screensaver is up.
func (m *Model) pump() {
	s, ok := m.mailbox.TryTake()
	if !ok {
		return
	}

	m.statusLine = s.StatusLine

	if !s.Valid {
		// error cycles update the status line only; last-known health
		// stays on screen and never wakes the screensaver
		return
	}

	m.snapshot = s
	m.haveSnapshot = true

	if s.ChangedFromPrevious && m.mode == ModeScreensaver {
		m.exitScreensaver()
	}
}

// maybeIdle enters the screensaver once input has been quiet long enough.
func (m *Model) maybeIdle() {
	if m.mode != ModeDashboard {
		return
	}
	if m.now().Sub(m.lastInput) >= m.cfg.Idle.Timeout {
		m.enterScreensaver()
	}
}

func (m *Model) enterScreensaver() {
	m.rain.Activate(m.width, m.height)
	m.mode = ModeScreensaver
	m.lastInput = m.now()
}

// exitScreensaver returns to the dashboard. The next View call re-renders
// everything from current data, including anything that arrived while the
// animation was covering the screen.
func (m *Model) exitScreensaver() {
	m.rain.Deactivate()
	m.mode = ModeDashboard
	m.lastInput = m.now()
}

// overallSeverity is the palette input for the rain: last-known severity,
// or None before the first valid snapshot.
func (m Model) overallSeverity() status.Severity {
	if !m.haveSnapshot {
		return status.SeverityNone
	}
	return m.snapshot.WorstSeverity
}
