package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestHub() *Hub {
	return NewHub(log.New(io.Discard))
}

func TestRegisterUnregister(t *testing.T) {
	h := newTestHub()

	a := h.RegisterClient("alice")
	b := h.RegisterClient("bob")
	if a.ID == b.ID {
		t.Fatalf("duplicate client id %d", a.ID)
	}
	if h.Players() != 2 {
		t.Fatalf("players = %d, want 2", h.Players())
	}

	h.UnregisterClient(a.ID)
	h.UnregisterClient(a.ID) // second call is a no-op
	if h.Players() != 1 {
		t.Fatalf("players = %d, want 1", h.Players())
	}
	if _, ok := <-a.EventsCh; ok {
		t.Fatal("events channel still open after unregister")
	}
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	h := newTestHub()
	c := h.RegisterClient("carol")

	go func() {
		ev := <-c.EventsCh
		if ev.Type == EventServerShutdown {
			h.UnregisterClient(c.ID)
		}
	}()

	start := time.Now()
	h.Shutdown(5 * time.Second)
	if time.Since(start) > 2*time.Second {
		t.Fatal("Shutdown waited for the timeout although the client left")
	}
	if h.Players() != 0 {
		t.Fatalf("players = %d after shutdown", h.Players())
	}
}

func TestShutdownTimeout(t *testing.T) {
	h := newTestHub()
	h.RegisterClient("dave") // never leaves

	start := time.Now()
	h.Shutdown(300 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 300*time.Millisecond {
		t.Fatalf("Shutdown returned after %v, before the timeout", elapsed)
	}
}

func TestLateJoinerSeesShutdown(t *testing.T) {
	h := newTestHub()
	h.Shutdown(0)

	c := h.RegisterClient("erin")
	select {
	case ev := <-c.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Fatalf("event = %v, want shutdown", ev.Type)
		}
	default:
		t.Fatal("client joining during shutdown was not notified")
	}
}
