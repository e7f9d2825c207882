package spectate

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-dodge/internal/scene"
)

const (
	broadcastBuffer = 256 // Messages queued between the game loops and the hub
	clientBuffer    = 64  // Messages queued per spectator before it is dropped
)

// client is one connected spectator.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps the set of spectators and fans messages out to them.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{} // Closed when Run returns
	mu         sync.Mutex
	logger     *log.Logger
}

// NewHub creates a hub. Call Run to start delivering messages.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the hub's main loop. It returns when ctx is cancelled, closing every
// client's send channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("spectator connected", "spectators", n)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Debug("spectator disconnected")

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Too slow to keep up.
					delete(h.clients, c)
					close(c.send)
					h.logger.Warn("dropped slow spectator")
				}
			}
			h.mu.Unlock()
		}
	}
}

// join registers c unless the hub has stopped.
func (h *Hub) join(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave unregisters c unless the hub has stopped.
func (h *Hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues a message for every spectator. It never blocks; when the
// queue is full the message is dropped.
func (h *Hub) Publish(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("could not encode message", "type", msg.Type, "err", err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("spectator queue full, message dropped", "type", msg.Type)
	}
}

// Listener returns a scene listener publishing the events of one player's
// game.
func (h *Hub) Listener(player string) scene.Listener {
	return func(ev scene.Event) {
		if msg, ok := FromEvent(player, ev); ok {
			h.Publish(msg)
		}
	}
}
