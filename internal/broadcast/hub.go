package broadcast

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/dino-dash/internal/game"
)

// DefaultRate is the spectator frame rate when none is given.
const DefaultRate = 20

// Hub fans frames out to every connected spectator.
// Publish is safe to call from the game loop: it never blocks on a client.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger
	interval time.Duration
	now      func() time.Time

	mu      sync.RWMutex
	clients map[ClientID]*client
	last    time.Time
	seq     uint64
	closed  bool
}

// NewHub creates a hub that publishes at most rate frames per second.
func NewHub(rate int, logger *log.Logger) *Hub {
	if rate <= 0 {
		rate = DefaultRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			// Spectating is read-only, so any origin may watch.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:   logger,
		interval: time.Second / time.Duration(rate),
		now:      time.Now,
		clients:  make(map[ClientID]*client),
	}
}

// ServeHTTP upgrades the request and streams frames until the peer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newClient(conn, defaultBuffer)
	if !h.register(c) {
		c.Close()
		conn.Close()
		return
	}
	h.logger.Info("spectator joined", "id", c.id, "remote", r.RemoteAddr)

	go c.writePump()
	c.readPump()

	h.unregister(c.id)
	c.Close()
	h.logger.Info("spectator left", "id", c.id)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	return true
}

func (h *Hub) unregister(id ClientID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends the snapshot to every spectator, throttled to the hub rate.
func (h *Hub) Publish(snap game.Snapshot) {
	h.publish(snap, h.now())
}

// publish reports whether a frame went out.
func (h *Hub) publish(snap game.Snapshot, now time.Time) bool {
	h.mu.Lock()
	if h.closed || (!h.last.IsZero() && now.Sub(h.last) < h.interval) {
		h.mu.Unlock()
		return false
	}
	h.last = now
	h.seq++
	seq := h.seq
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	if len(targets) == 0 {
		return true
	}

	data, err := msgpack.Marshal(FrameFromSnapshot(snap, seq))
	if err != nil {
		h.logger.Error("could not encode frame", "error", err)
		return false
	}
	for _, c := range targets {
		c.Send(data)
	}
	return true
}

// Close disconnects every spectator and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.clients {
		c.Close()
		delete(h.clients, id)
	}
}

// ListenAndServe serves the hub at /ws on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
