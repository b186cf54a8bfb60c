// Package conn owns the single telemetry socket: its lifecycle state
// machine, frame decoding, and data-liveness tracking. Transport events are
// delivered as Bubble Tea messages so the state machine always runs on the
// program loop, never on the reader goroutine.
package conn

import (
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"raceoverlay/internal/config"
	"raceoverlay/internal/telemetry"
)

// Status is the user-visible connection state.
type Status int

const (
	StatusDisconnected Status = iota
	StatusInvalid
	StatusConnecting
	StatusConnected
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "Invalid"
	case StatusConnecting:
		return "Connecting"
	case StatusConnected:
		return "Connected"
	case StatusError:
		return "Error"
	default:
		return "Disconnected"
	}
}

// OpenMsg reports a successful dial. Sock is handed over to the manager.
type OpenMsg struct {
	Gen  int
	Sock Socket
}

// RawFrameMsg carries one inbound text frame.
type RawFrameMsg struct {
	Gen  int
	Data []byte
}

// ClosedMsg reports an orderly transport closure.
type ClosedMsg struct {
	Gen int
}

// ErrorMsg reports a dial or transport failure.
type ErrorMsg struct {
	Gen int
	Err error
}

// ValidPort reports whether p is a usable TCP port.
func ValidPort(p int) bool {
	return p >= config.PortMin && p <= config.PortMax
}

// Manager is the connection state machine. All methods must be called from
// the program loop; only the reader goroutine it spawns runs concurrently,
// and that goroutine communicates exclusively through the sink.
type Manager struct {
	dial Dialer
	sink func(tea.Msg)
	log  *zap.Logger

	status   Status
	sock     Socket
	latest   *telemetry.State
	lastSeen time.Time
	gen      int
}

// NewManager wires a manager to a dialer and an event sink (tea.Program.Send
// in production, a capture func in tests).
func NewManager(dial Dialer, sink func(tea.Msg), log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{dial: dial, sink: sink, log: log}
}

// Connect validates the port and replaces any live socket with a fresh dial.
// An out-of-range port reports Invalid without touching the existing
// connection.
func (m *Manager) Connect(host string, port int) {
	if !ValidPort(port) {
		m.status = StatusInvalid
		m.log.Warn("rejecting connect request", zap.Int("port", port))
		return
	}

	m.closeSocket()
	m.gen++
	m.status = StatusConnecting

	url := fmt.Sprintf("ws://%s:%d", host, port)
	m.log.Info("connecting", zap.String("url", url))
	go m.readLoop(m.gen, url)
}

func (m *Manager) readLoop(gen int, url string) {
	sock, err := m.dial(url)
	if err != nil {
		m.sink(ErrorMsg{Gen: gen, Err: err})
		return
	}
	m.sink(OpenMsg{Gen: gen, Sock: sock})

	for {
		data, err := sock.ReadMessage()
		if err != nil {
			if isClosed(err) {
				m.sink(ClosedMsg{Gen: gen})
			} else {
				m.sink(ErrorMsg{Gen: gen, Err: err})
			}
			return
		}
		m.sink(RawFrameMsg{Gen: gen, Data: data})
	}
}

// HandleOpen transitions to Connected and takes ownership of the socket.
func (m *Manager) HandleOpen(msg OpenMsg) {
	if msg.Gen != m.gen {
		_ = msg.Sock.Close()
		return
	}
	m.sock = msg.Sock
	m.status = StatusConnected
	m.log.Info("connected")
}

// HandleFrame decodes and normalizes one inbound frame. Malformed JSON is
// logged and dropped without touching the previous snapshot. The returned
// bool reports whether a new snapshot was accepted and a redraw is due.
func (m *Manager) HandleFrame(msg RawFrameMsg, now time.Time) bool {
	if msg.Gen != m.gen {
		return false
	}

	var raw map[string]any
	if err := json.Unmarshal(msg.Data, &raw); err != nil {
		m.log.Warn("dropping malformed frame", zap.Error(err))
		return false
	}

	st := telemetry.Normalize(raw)
	if st == nil {
		return false
	}

	m.latest = st
	m.lastSeen = now
	return true
}

// HandleClosed transitions to Disconnected and clears the snapshot. The
// caller should force an immediate fallback render.
func (m *Manager) HandleClosed(msg ClosedMsg) bool {
	if msg.Gen != m.gen {
		return false
	}
	m.sock = nil
	m.status = StatusDisconnected
	m.latest = nil
	m.log.Info("socket closed")
	return true
}

// HandleError transitions to Error. The snapshot is left in place; the
// staleness timer will surface the outage on its own.
func (m *Manager) HandleError(msg ErrorMsg) bool {
	if msg.Gen != m.gen {
		return false
	}
	m.sock = nil
	m.status = StatusError
	m.log.Warn("transport error", zap.Error(msg.Err))
	return true
}

// Close tears the socket down. Safe to call repeatedly and with no socket.
func (m *Manager) Close() {
	m.closeSocket()
	m.gen++
	m.status = StatusDisconnected
}

func (m *Manager) closeSocket() {
	if m.sock != nil {
		_ = m.sock.Close()
		m.sock = nil
	}
}

// Latest returns the most recent accepted snapshot, or nil.
func (m *Manager) Latest() *telemetry.State { return m.latest }

// Status returns the current connection status.
func (m *Manager) Status() Status { return m.status }

// Stale reports whether the feed has gone quiet: a snapshot exists but no
// frame was accepted within the timeout. This is a liveness check on data,
// not on the transport.
func (m *Manager) Stale(now time.Time) bool {
	return m.latest != nil && now.Sub(m.lastSeen) > config.StaleAfter
}
