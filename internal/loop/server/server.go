// Package server tracks the game sessions served by one SSH host. Every session
// runs its own game; the hub only knows who is connected and tells them when the
// host is going down.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ClientHandle represents a client's registration with the hub.
type ClientHandle struct {
	ID       int
	Username string
	Joined   time.Time
	EventsCh chan ClientEvent // Events sent to the client (shutdown)
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// Hub is the registry of connected sessions. It is safe for concurrent use.
type Hub struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	closing      bool
	logger       *log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		logger:       logger,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
// A client that joins while the hub is shutting down is told so right away.
func (h *Hub) RegisterClient(username string) *ClientHandle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := &ClientHandle{
		ID:       h.nextClientID,
		Username: username,
		Joined:   time.Now(),
		EventsCh: make(chan ClientEvent, 16),
	}
	h.nextClientID++
	h.clients[handle.ID] = handle

	if h.closing {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}

	h.logger.Info("client joined", "id", handle.ID, "user", username, "players", len(h.clients))
	return handle
}

// UnregisterClient removes a client from the hub and closes its event channel.
func (h *Hub) UnregisterClient(clientID int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(h.clients, clientID)
	h.logger.Info("client left", "id", clientID, "user", handle.Username,
		"played", time.Since(handle.Joined).Round(time.Second), "players", len(h.clients))
}

// Players returns the number of connected clients.
func (h *Hub) Players() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown notifies all connected clients about the shutdown and waits for
// them to disconnect, up to the given timeout.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.Lock()
	h.closing = true
	for _, handle := range h.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.Unlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			h.logger.Warn("shutdown timeout, clients still connected", "players", h.Players())
			return
		case <-ticker.C:
		}
	}
}
