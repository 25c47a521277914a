/*
Package ws implements the WebSocket transport for the game server.

This file defines the Hub, which tracks every live connection and the room
broadcast groups, and implements the coordinator's BroadcastGateway capability.
*/
package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"wordrush/internal/pkg/logx"
)

// Envelope is the wire format for every outbound frame.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Hub owns the set of connected clients and the room membership groups.
// It implements game.BroadcastGateway. Delivery is fire-and-forget: a client
// whose send queue is full simply misses the frame; committed game state is
// never rolled back on delivery failure.
type Hub struct {
	// mu protects clients and rooms.
	mu sync.RWMutex

	// clients maps connection id to its active client.
	clients map[string]*Client

	// rooms maps room id to the set of member connection ids.
	rooms map[string]map[string]struct{}

	logger zerolog.Logger
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]struct{}),
		logger:  logx.Logger().With().Str("component", "Hub").Logger(),
	}
}

// Register tracks a freshly upgraded connection.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.id] = c

	h.logger.Info().
		Str("conn_id", c.id).
		Int("total_clients", len(h.clients)).
		Msg("Client registered.")
}

// unregister drops a connection and closes its send queue.
func (h *Hub) unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[connID]
	if !ok {
		return
	}

	delete(h.clients, connID)
	close(c.send)

	h.logger.Info().
		Str("conn_id", connID).
		Int("total_clients", len(h.clients)).
		Msg("Client unregistered.")
}

// Join adds a connection to a room's broadcast group.
func (h *Hub) Join(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.rooms[roomID]
	if !ok {
		group = make(map[string]struct{})
		h.rooms[roomID] = group
	}
	group[connID] = struct{}{}
}

// Leave removes a connection from a room's broadcast group, dropping the group
// once it is empty.
func (h *Hub) Leave(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.rooms[roomID]
	if !ok {
		return
	}

	delete(group, connID)
	if len(group) == 0 {
		delete(h.rooms, roomID)
	}
}

// ToConn delivers a named event to a single connection.
func (h *Hub) ToConn(connID, event string, payload any) {
	frame, err := h.encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	h.deliver(connID, event, frame)
}

// ToRoom delivers a named event to every connection in the room's group.
func (h *Hub) ToRoom(roomID, event string, payload any) {
	frame, err := h.encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID := range h.rooms[roomID] {
		h.deliver(connID, event, frame)
	}
}

// deliver queues a frame on one client without blocking. Callers hold h.mu.
func (h *Hub) deliver(connID, event string, frame []byte) {
	c, ok := h.clients[connID]
	if !ok {
		return
	}

	select {
	case c.send <- frame:
	default:
		h.logger.Warn().
			Str("conn_id", connID).
			Str("event", event).
			Msg("Client send queue full, dropping frame.")
	}
}

// encode marshals an event envelope for the wire.
func (h *Hub) encode(event string, payload any) ([]byte, error) {
	frame, err := json.Marshal(Envelope{Type: event, Payload: payload})
	if err != nil {
		h.logger.Error().Err(err).Str("event", event).Msg("Error marshaling event for delivery.")
		return nil, err
	}
	return frame, nil
}

// Shutdown closes every live connection. Called during graceful server shutdown.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for connID, c := range h.clients {
		c.conn.Close()
		delete(h.clients, connID)
	}
	h.rooms = make(map[string]map[string]struct{})

	h.logger.Info().Msg("Hub shutdown complete.")
}
