package broadcast

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/game"
)

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	s := game.NewSession(game.Options{
		Config: config.Default(),
		Width:  1200,
		Height: 600,
		Seed:   3,
	})
	s.Step(16)
	return s.Snapshot()
}

func TestFrameFromSnapshot(t *testing.T) {
	snap := testSnapshot(t)
	snap.Obstacles = append(snap.Obstacles, game.Obstacle{Kind: game.KindBird, X: 900, Y: 300, W: 80, H: 50})

	f := FrameFromSnapshot(snap, 9)
	if f.Seq != 9 || f.Score != snap.Score || f.Phase != "calm" || f.Outcome != "running" {
		t.Errorf("frame header = %+v", f)
	}
	if f.Player != boxOf(snap.Player.Hitbox) {
		t.Errorf("player = %+v, expected %+v", f.Player, snap.Player.Hitbox)
	}
	last := f.Obstacles[len(f.Obstacles)-1]
	if last.Kind != "bird" || last.X != 900 || last.W != 80 {
		t.Errorf("obstacle = %+v", last)
	}
}

func TestPublishThrottles(t *testing.T) {
	h := NewHub(10, nil)
	snap := testSnapshot(t)
	start := time.Unix(100, 0)

	tests := []struct {
		at       time.Duration
		expected bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{250 * time.Millisecond, true},
	}
	for _, tc := range tests {
		if got := h.publish(snap, start.Add(tc.at)); got != tc.expected {
			t.Errorf("publish at %v = %v, expected %v", tc.at, got, tc.expected)
		}
	}
}

func TestClientDropsOldest(t *testing.T) {
	c := newClient(nil, 2)
	c.Send([]byte("a"))
	c.Send([]byte("b"))
	c.Send([]byte("c"))

	got := string(<-c.frames) + string(<-c.frames)
	if got != "bc" {
		t.Errorf("queued frames = %q, expected %q", got, "bc")
	}

	c.Close()
	c.Close()
	c.Send([]byte("d"))
	if len(c.frames) != 0 {
		t.Error("closed client should not queue frames")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubStreamsFrames(t *testing.T) {
	h := NewHub(1000, nil)
	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return h.Clients() == 1 })

	snap := testSnapshot(t)
	h.Publish(snap)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() failed: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Errorf("message type = %d, expected binary", kind)
	}

	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if f.Seq != 1 || f.Width != 1200 || f.Score != snap.Score {
		t.Errorf("frame = %+v", f)
	}

	h.Close()
	waitFor(t, func() bool { return h.Clients() == 0 })
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection should close after the hub closes")
	}
}

func TestHubForgetsLeavingClients(t *testing.T) {
	h := NewHub(0, nil)
	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	waitFor(t, func() bool { return h.Clients() == 1 })

	conn.Close()
	waitFor(t, func() bool { return h.Clients() == 0 })
}
