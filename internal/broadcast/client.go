package broadcast

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second

	// Spectators never send anything meaningful; control frames only.
	maxMessageSize = 512

	defaultBuffer = 16
)

// ClientID uniquely identifies a spectator connection.
type ClientID string

// newClientID returns a short random identifier.
func newClientID() ClientID {
	b := make([]byte, 5)
	//nolint:errcheck // crypto/rand.Read never fails on supported platforms
	rand.Read(b)
	return ClientID(strings.ToLower(base32.StdEncoding.EncodeToString(b)))
}

// client is one spectator. Frames queue in a buffered channel and the
// oldest is dropped when the buffer is full, so Send never blocks.
type client struct {
	id       ClientID
	conn     *websocket.Conn
	frames   chan []byte
	done     chan struct{}
	doneOnce sync.Once
}

func newClient(conn *websocket.Conn, buffer int) *client {
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &client{
		id:     newClientID(),
		conn:   conn,
		frames: make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

// Send queues an encoded frame.
func (c *client) Send(data []byte) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.frames <- data:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-c.frames:
		default:
		}
		select {
		case c.frames <- data:
		default:
		}
	}
}

// Close marks the client as done. Safe to call multiple times.
func (c *client) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

// writePump sends queued frames and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.frames:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// readPump discards incoming messages and returns when the peer goes away.
func (c *client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
