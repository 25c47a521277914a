/*
Package game contains the core coordination logic for multiplayer word-guessing sessions.

This file defines the named outbound events and their typed payloads. The
snapshot payload (EventGameUpdate) is the single source of client-visible truth;
clients are not expected to reconstruct state from the lighter events alone.
*/
package game

// Outbound event names, delivered either to a single connection or room-wide.
const (
	EventConnectionAck = "connection_ack"
	EventGameCreated   = "game_created"
	EventGameJoined    = "game_joined"
	EventError         = "error"
	EventGameStarted   = "game_started"
	EventGameUpdate    = "game_update"
	EventPlayerWon     = "player_won"
	EventGameEnded     = "game_ended"
	EventTypingUpdate  = "typing_update"
	EventPlayerLeft    = "player_left"
)

// ConnectionAckPayload acknowledges a freshly established connection.
type ConnectionAckPayload struct {
	Status string `json:"status"`
}

// RoomEntryPayload is sent to the caller after creating or joining a room.
type RoomEntryPayload struct {
	GameID     string `json:"game_id"`
	WordLength int    `json:"word_length"`
	IsCreator  bool   `json:"is_creator"`
	PlayerName string `json:"player_name"`
}

// ErrorPayload carries a user-facing error message to the originating connection.
type ErrorPayload struct {
	Message string `json:"message"`
}

// GameStartedPayload announces that the round has begun.
type GameStartedPayload struct {
	WordLength int `json:"word_length"`
}

// PlayerWonPayload announces the winning player to the whole room.
type PlayerWonPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// GameEndedPayload reveals the secret word once every member has finished.
// This is the only event that exposes the word to non-winning players.
type GameEndedPayload struct {
	Word string `json:"word"`
}

// TypingUpdatePayload signals which player is currently typing. An empty
// TypingPlayer means nobody is typing. PlayerName is omitted on clear.
type TypingUpdatePayload struct {
	TypingPlayer string `json:"typing_player"`
	PlayerName   string `json:"player_name,omitempty"`
}

// PlayerLeftPayload announces a departure to the remaining members.
type PlayerLeftPayload struct {
	PlayerID string `json:"player_id"`
}

// PlayerSnapshot is one member's entry in the room-wide state snapshot.
type PlayerSnapshot struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Attempts      []Attempt `json:"attempts"`
	AttemptsCount int       `json:"attempts_count"`
	IsCreator     bool      `json:"is_creator"`
	HasWon        bool      `json:"has_won"`
}

// GameUpdatePayload is the full room-state snapshot broadcast after joins,
// starts, and attempts.
type GameUpdatePayload struct {
	WordLength   int              `json:"word_length"`
	MaxAttempts  int              `json:"max_attempts"`
	Players      []PlayerSnapshot `json:"players"`
	Status       Status           `json:"status"`
	TypingPlayer string           `json:"typing_player"`
}
