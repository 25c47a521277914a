/*
Package ws implements the WebSocket transport for the game server.

This file defines the Client, one active WebSocket connection. It runs the
read/write pumps, decodes inbound event envelopes, and dispatches them to the
game coordinator.
*/
package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"wordrush/internal/game"
	"wordrush/internal/pkg/errs"
	"wordrush/internal/pkg/logx"
)

const (
	// timeout for writing a frame to the connection.
	writeWait = 10 * time.Second

	// maximum time to wait for a Pong before the connection is considered dead.
	pongWait = 60 * time.Second

	// frequency of server Ping messages.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of an inbound frame.
	maxMessageSize = 1024

	// capacity of the per-client outbound queue.
	sendQueueSize = 64
)

// Inbound event names (client to server).
const (
	eventCreateGame    = "create_game"
	eventJoinGame      = "join_game"
	eventStartGame     = "start_game"
	eventSubmitAttempt = "submit_attempt"
	eventTyping        = "player_typing"
	eventStoppedTyping = "player_stopped_typing"
)

type createGamePayload struct {
	PlayerName string `json:"player_name"`
}

type joinGamePayload struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
}

type submitAttemptPayload struct {
	Attempt string `json:"attempt"`
}

// Client represents one active WebSocket connection bound to a connection id.
type Client struct {
	id    string
	hub   *Hub
	conn  *websocket.Conn
	coord *game.Coordinator
	send  chan []byte

	logger zerolog.Logger
}

// NewClient wraps an upgraded connection. The id becomes the player's
// connection handle for the lifetime of the socket.
func NewClient(id string, hub *Hub, conn *websocket.Conn, coord *game.Coordinator) *Client {
	return &Client{
		id:    id,
		hub:   hub,
		conn:  conn,
		coord: coord,
		send:  make(chan []byte, sendQueueSize),
		logger: logx.Logger().With().
			Str("component", "Client").
			Str("conn_id", id).
			Logger(),
	}
}

// ReadPump reads frames from the connection until it closes, dispatching each
// inbound event. It handles Pong heartbeats and performs cleanup on exit.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading frame (client close/going away)")
			}
			break
		}

		c.dispatch(frame)
	}
}

// cleanupOnDisconnect tears the connection down: the coordinator removes the
// player from its room, then the hub forgets the connection.
func (c *Client) cleanupOnDisconnect() {
	c.coord.Disconnect(c.id)
	c.hub.unregister(c.id)

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Connection close error during cleanup")
	}
}

// dispatch decodes an inbound envelope and routes it to the coordinator.
// Malformed or unknown events are rejected here with an error event; they never
// reach the coordinator. A panic inside a handler is converted to a generic
// error response so a single bad event cannot take the process down.
func (c *Client) dispatch(frame []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Error().Interface("panic", rec).Msg("Recovered from panic in event handler")
			c.sendError(errs.NewError(errs.ErrUnknown))
		}
	}()

	var env struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload,omitempty"`
	}

	if err := json.Unmarshal(frame, &env); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid JSON")
		c.sendError(errs.NewError(errs.ErrInvalidEventFormat))
		return
	}

	switch env.Type {
	case eventCreateGame:
		var p createGamePayload
		if !c.bind(env.Payload, &p) {
			return
		}
		c.sendError(c.coord.CreateRoom(context.Background(), c.id, p.PlayerName))

	case eventJoinGame:
		var p joinGamePayload
		if !c.bind(env.Payload, &p) {
			return
		}
		c.sendError(c.coord.JoinRoom(c.id, p.GameID, p.PlayerName))

	case eventStartGame:
		c.sendError(c.coord.StartGame(c.id))

	case eventSubmitAttempt:
		var p submitAttemptPayload
		if !c.bind(env.Payload, &p) {
			return
		}
		c.sendError(c.coord.SubmitAttempt(c.id, p.Attempt))

	case eventTyping:
		c.coord.SetTyping(c.id)

	case eventStoppedTyping:
		c.coord.ClearTyping(c.id)

	default:
		c.logger.Warn().Str("event_type", env.Type).Msg("Client sent unsupported event type")
		c.sendError(errs.NewError(errs.ErrUnknownEventType))
	}
}

// bind unmarshals an event payload, rejecting malformed input at the boundary.
func (c *Client) bind(raw json.RawMessage, dst any) bool {
	if len(raw) == 0 {
		c.sendError(errs.NewError(errs.ErrInvalidEventFormat))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid event payload")
		c.sendError(errs.NewError(errs.ErrInvalidEventFormat))
		return false
	}
	return true
}

// sendError emits an error event to this connection. A nil error is a no-op so
// coordinator results can be passed through directly.
func (c *Client) sendError(customErr *errs.CustomError) {
	if customErr == nil {
		return
	}
	c.hub.ToConn(c.id, game.EventError, game.ErrorPayload{Message: customErr.Message})
}

// WritePump drains the send queue onto the connection and keeps the heartbeat
// alive with periodic Pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("Failed to set write deadline")
				return
			}

			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.logger.Debug().Err(err).Msg("Error writing close message")
				}
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Warn().Err(err).Msg("Error writing frame")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Warn().Err(err).Msg("Error writing ping")
				return
			}
		}
	}
}
