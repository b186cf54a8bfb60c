package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"raceoverlay/internal/config"
	"raceoverlay/internal/conn"
	"raceoverlay/internal/render"
	"raceoverlay/internal/telemetry"
	"raceoverlay/internal/ui"
)

const watchdogInterval = 250 * time.Millisecond

// shared holds state shared between the Bubble Tea model copies and main.go.
// Bubble Tea uses value receivers, so pointer fields keep every copy on the
// same underlying data.
type shared struct {
	mgr   *conn.Manager
	sched *Scheduler
	view  *Viewport
	log   *zap.Logger

	// Last composited canvas frame
	frame string
}

// Model is the root Bubble Tea model for the overlay.
type Model struct {
	width  int
	height int

	toggles render.Toggles
	paused  bool

	host string
	port int
	demo bool

	shared *shared
}

// New creates the root model. The manager is wired in Start once the
// program exists.
func New(host string, port, fps int, demo bool, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if fps <= 0 {
		fps = config.TargetFPS
	}
	return Model{
		toggles: render.Toggles{Radar: true, Progress: true, Delta: true},
		host:    host,
		port:    port,
		demo:    demo,
		shared: &shared{
			sched: NewScheduler(fps),
			view:  NewViewport(config.PixelRatio),
			log:   log,
		},
	}
}

// Start wires the connection manager to the running program and performs
// the initial auto-connect. Must be called before p.Run().
func (m *Model) Start(p *tea.Program) {
	dial := conn.DialWS
	if m.demo {
		dial = conn.DialDemo
	}
	m.shared.mgr = conn.NewManager(dial, p.Send, m.shared.log)
	m.shared.mgr.Connect(m.host, m.port)
}

func (m Model) Init() tea.Cmd {
	return watchdogCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.canvasCells()
		m.shared.view.Resize(cols, rows)
		return m, m.shared.sched.Request()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case WatchdogMsg:
		// Keeps the staleness banner honest even when no frames arrive.
		return m, tea.Batch(watchdogCmd(), m.shared.sched.Request())

	case RedrawMsg:
		if m.shared.sched.Consume(msg.Token) {
			m.draw()
		}
		return m, nil

	case conn.OpenMsg:
		m.shared.mgr.HandleOpen(msg)
		return m, m.shared.sched.Request()

	case conn.RawFrameMsg:
		if m.paused {
			return m, nil
		}
		if m.shared.mgr.HandleFrame(msg, time.Now()) {
			return m, m.shared.sched.Request()
		}
		return m, nil

	case conn.ClosedMsg:
		if m.shared.mgr.HandleClosed(msg) {
			// Closure renders the fallback immediately, no coalescing.
			m.draw()
		}
		return m, nil

	case conn.ErrorMsg:
		if m.shared.mgr.HandleError(msg) {
			return m, m.shared.sched.Request()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.mgr.Close()
		return m, tea.Quit

	case "r", "R":
		m.toggles.Radar = !m.toggles.Radar
		return m, m.shared.sched.Request()

	case "p", "P":
		m.toggles.Progress = !m.toggles.Progress
		return m, m.shared.sched.Request()

	case "d", "D":
		m.toggles.Delta = !m.toggles.Delta
		return m, m.shared.sched.Request()

	case "c", "C":
		m.shared.mgr.Connect(m.host, m.port)
		return m, m.shared.sched.Request()

	case " ", "space":
		m.paused = !m.paused
		return m, m.shared.sched.Request()
	}

	return m, nil
}

// draw runs the render pipeline against the latest snapshot and caches the
// composited frame for View.
func (m *Model) draw() {
	if !m.shared.view.Ready() {
		return
	}
	c := m.shared.view.Canvas()
	render.Draw(c, render.Frame{
		State:   m.shared.mgr.Latest(),
		Toggles: m.toggles,
		Message: m.banner(time.Now()),
	})
	m.shared.frame = c.Render()
}

// banner picks the fallback message, empty when live widgets should draw.
func (m *Model) banner(now time.Time) string {
	mgr := m.shared.mgr
	if mgr.Latest() != nil {
		if mgr.Stale(now) {
			return "telemetry paused"
		}
		return ""
	}
	switch mgr.Status() {
	case conn.StatusInvalid:
		return "invalid port"
	case conn.StatusConnecting:
		return "connecting..."
	case conn.StatusError:
		return "connection error"
	case conn.StatusDisconnected:
		return "socket closed - [c] to reconnect"
	default:
		return "waiting for telemetry"
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing overlay..."
	}

	mgr := m.shared.mgr
	status := conn.StatusDisconnected.String()
	var cars []telemetry.Contact
	deltaText := "--"
	if mgr != nil {
		status = mgr.Status().String()
		if st := mgr.Latest(); st != nil {
			cars = st.Cars
			deltaText = telemetry.FormatDelta(st.Player.Delta)
		}
	}

	menuBar := ui.RenderMenuBar(m.width, m.toggles.Radar, m.toggles.Progress, m.toggles.Delta, status)

	bodyH := m.height - 2
	if bodyH < 5 {
		bodyH = 5
	}
	listW := m.listWidth()
	overlay := ui.RenderOverlayPanel(m.width-listW, bodyH, m.shared.frame)
	contacts := ui.RenderContacts(cars, listW, bodyH)

	endpoint := fmt.Sprintf("%s:%d", m.host, m.port)
	if m.demo {
		endpoint = "demo feed"
	}
	statusBar := ui.RenderStatusBar(m.width, status, endpoint, len(cars), deltaText)

	return ui.ComposeLayout(menuBar, overlay, contacts, statusBar)
}

func (m Model) listWidth() int {
	listW := m.width / 4
	if listW < 24 {
		listW = 24
	}
	if listW > m.width-30 {
		listW = m.width - 30
	}
	if listW < 0 {
		listW = 0
	}
	return listW
}

// canvasCells reports the cell grid available to the drawing surface inside
// the overlay panel border.
func (m Model) canvasCells() (int, int) {
	bodyH := m.height - 2
	if bodyH < 5 {
		bodyH = 5
	}
	cols := m.width - m.listWidth() - 2
	rows := bodyH - 2
	if cols < 10 {
		cols = 10
	}
	if rows < 4 {
		rows = 4
	}
	return cols, rows
}

func watchdogCmd() tea.Cmd {
	return tea.Tick(watchdogInterval, func(t time.Time) tea.Msg {
		return WatchdogMsg(t)
	})
}
