package conn

import (
	"errors"
	"io"
	"net"

	"github.com/gorilla/websocket"
)

// Socket is the minimal transport surface the manager needs. The production
// implementation wraps a gorilla websocket connection; tests substitute a
// scripted fake.
type Socket interface {
	ReadMessage() ([]byte, error)
	Close() error
}

// Dialer opens a socket for a ws:// URL.
type Dialer func(url string) (Socket, error)

type wsSocket struct {
	conn *websocket.Conn
}

// DialWS is the production dialer.
func DialWS(url string) (Socket, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &wsSocket{conn: conn}, nil
}

func (s *wsSocket) ReadMessage() ([]byte, error) {
	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		// The feed is text frames only; anything else is skipped.
		if msgType == websocket.TextMessage {
			return data, nil
		}
	}
}

func (s *wsSocket) Close() error {
	// Best effort close handshake before dropping the TCP session.
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}

// isClosed distinguishes an orderly shutdown from a transport fault.
func isClosed(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived)
}
