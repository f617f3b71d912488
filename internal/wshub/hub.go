package wshub

import (
	"context"
	"encoding/json"
	"sync"

	"dartsleague/internal/events"
	"dartsleague/internal/games"

	"github.com/coder/websocket"
	"go.uber.org/zap"
)

const (
	TypeWelcome   = "welcome"
	TypeGameSaved = "gameSaved"
)

// ServerMessage is the JSON structure sent to clients.
type ServerMessage struct {
	Type     string      `json:"t"`
	ClientID string      `json:"id,omitempty"`
	Game     *games.Game `json:"game,omitempty"`
}

// Client represents a single WebSocket connection in the hub.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub fans saved games out to every connected live-feed client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	log     *zap.Logger
}

// NewHub creates a new Hub.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		log:     log,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.Send)
		delete(h.clients, id)
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to all clients. Non-blocking: drops if channel full.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("marshal broadcast", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			h.log.Debug("client buffer full, dropping message", zap.String("client", id))
		}
	}
}

// Run forwards saved-game events from the bus until ctx is done.
func (h *Hub) Run(ctx context.Context, bus *events.Bus) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-bus.GamesSaved:
			g := ev.Game
			h.Broadcast(ServerMessage{Type: TypeGameSaved, Game: &g})
		}
	}
}
