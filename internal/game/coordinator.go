/*
Package game contains the core coordination logic for multiplayer word-guessing sessions.

This file defines the Coordinator, the state machine that validates inbound
events, mutates room state through the evaluator and word source, and emits
outbound events through the broadcast gateway.
*/
package game

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"wordrush/internal/pkg/errs"
	"wordrush/internal/pkg/logx"
)

// Coordinator processes game events against a single Registry. Every operation
// is an atomic transaction: the coordinator's mutex is held for the full
// handler, so no two events interleave on the same room. The only blocking
// work, the remote word lookup, happens before the lock is taken.
//
// Operations report validation failures as *errs.CustomError return values and
// leave room state untouched; the transport layer maps them to error events for
// the originating connection.
type Coordinator struct {
	mu      sync.Mutex
	reg     *Registry
	words   WordSource
	gateway BroadcastGateway
	logger  zerolog.Logger
}

// NewCoordinator constructs a Coordinator around the given registry, word
// source, and gateway.
func NewCoordinator(reg *Registry, words WordSource, gateway BroadcastGateway) *Coordinator {
	return &Coordinator{
		reg:     reg,
		words:   words,
		gateway: gateway,
		logger:  logx.Logger().With().Str("component", "Coordinator").Logger(),
	}
}

// Connect acknowledges a freshly established connection.
func (c *Coordinator) Connect(connID string) {
	c.logger.Info().Str("conn_id", connID).Msg("Client connected.")
	c.gateway.ToConn(connID, EventConnectionAck, ConnectionAckPayload{Status: "Connected"})
}

// CreateRoom draws a secret word, allocates a fresh room with the caller as
// creator and sole member, and confirms with a game_created event.
//
// The word is resolved before the registry lock is acquired so a slow remote
// lookup never stalls events against other rooms.
func (c *Coordinator) CreateRoom(ctx context.Context, connID, playerName string) *errs.CustomError {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return errs.NewError(errs.ErrEmptyName)
	}

	secretWord := c.words.FetchWord(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A connection belongs to at most one room; creating a new one abandons
	// the old membership first.
	c.detachFromRoom(connID)

	room, err := c.reg.createRoom(secretWord, connID)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to allocate room id.")
		return errs.NewError(errs.ErrUnknown)
	}

	c.reg.registerPlayer(connID, playerName, room.ID)
	c.gateway.Join(room.ID, connID)

	c.gateway.ToConn(connID, EventGameCreated, RoomEntryPayload{
		GameID:     room.ID,
		WordLength: WordLength,
		IsCreator:  true,
		PlayerName: playerName,
	})

	c.logger.Info().
		Str("room_id", room.ID).
		Str("conn_id", connID).
		Msg("Room created.")

	return nil
}

// JoinRoom adds the caller to an existing waiting room, confirms with a
// game_joined event, and broadcasts a fresh snapshot to the whole room.
func (c *Coordinator) JoinRoom(connID, roomID, playerName string) *errs.CustomError {
	roomID = strings.TrimSpace(roomID)
	playerName = strings.TrimSpace(playerName)

	if roomID == "" {
		return errs.NewError(errs.ErrEmptyRoomID)
	}
	if playerName == "" {
		return errs.NewError(errs.ErrEmptyName)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.reg.lookupRoom(roomID)
	if room == nil {
		return errs.NewError(errs.ErrRoomNotFound)
	}
	if room.Status != StatusWaiting {
		return errs.NewError(errs.ErrRoomNotJoinable)
	}

	// Validation passed; leave any previous room before joining this one so a
	// connection never holds two memberships. Rejoining the same room is a
	// no-op here.
	if player := c.reg.lookupPlayer(connID); player != nil && player.RoomID != room.ID {
		c.detachFromRoom(connID)
	}

	room.addMember(connID)
	c.reg.registerPlayer(connID, playerName, room.ID)
	c.gateway.Join(room.ID, connID)

	c.gateway.ToConn(connID, EventGameJoined, RoomEntryPayload{
		GameID:     room.ID,
		WordLength: WordLength,
		IsCreator:  false,
		PlayerName: playerName,
	})

	c.broadcastUpdate(room)

	c.logger.Info().
		Str("room_id", room.ID).
		Str("conn_id", connID).
		Int("members", len(room.MemberIDs)).
		Msg("Player joined room.")

	return nil
}

// StartGame transitions the caller's room from waiting to playing. Calls by
// anyone but the creator, or against a room that already left the waiting
// state, are silent no-ops: nothing changes and nothing is emitted.
func (c *Coordinator) StartGame(connID string) *errs.CustomError {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.reg.lookupPlayer(connID)
	if player == nil {
		return nil
	}

	room := c.reg.lookupRoom(player.RoomID)
	if room == nil || room.CreatorID != connID || room.Status != StatusWaiting {
		return nil
	}

	room.Status = StatusPlaying

	c.gateway.ToRoom(room.ID, EventGameStarted, GameStartedPayload{WordLength: WordLength})
	c.broadcastUpdate(room)

	c.logger.Info().Str("room_id", room.ID).Msg("Round started.")

	return nil
}

// SubmitAttempt validates and records one guess for the caller. A fully-correct
// attempt finishes the room immediately and announces the winner; either way
// the completion check runs and a fresh snapshot is broadcast.
func (c *Coordinator) SubmitAttempt(connID, word string) *errs.CustomError {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.reg.lookupPlayer(connID)
	if player == nil {
		return errs.NewError(errs.ErrPlayerNotFound)
	}

	room := c.reg.lookupRoom(player.RoomID)
	if room == nil {
		return errs.NewError(errs.ErrRoomNotFound)
	}
	if room.Status != StatusPlaying {
		return errs.NewError(errs.ErrRoomNotActive)
	}

	word = strings.ToUpper(strings.TrimSpace(word))
	if utf8.RuneCountInString(word) != WordLength {
		return errs.NewError(errs.ErrInvalidLength)
	}
	if !isAlphabetic(word) {
		return errs.NewError(errs.ErrInvalidCharacters)
	}
	if len(room.Attempts[connID]) >= MaxAttempts {
		return errs.NewError(errs.ErrNoAttemptsLeft)
	}

	attempt := Attempt{
		Word:       word,
		Evaluation: Evaluate(word, room.SecretWord),
	}
	room.Attempts[connID] = append(room.Attempts[connID], attempt)

	if attempt.IsWinning() {
		room.Status = StatusFinished
		room.WinnerID = connID

		c.gateway.ToRoom(room.ID, EventPlayerWon, PlayerWonPayload{
			PlayerID:   connID,
			PlayerName: player.Name,
		})

		c.logger.Info().
			Str("room_id", room.ID).
			Str("conn_id", connID).
			Int("attempts", len(room.Attempts[connID])).
			Msg("Player won the round.")
	}

	c.checkCompletion(room)
	c.broadcastUpdate(room)

	return nil
}

// SetTyping marks the caller as the typing player and notifies the room.
// Typing events are high-frequency; they emit only the lightweight
// typing_update, never a full snapshot.
func (c *Coordinator) SetTyping(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.reg.lookupPlayer(connID)
	if player == nil {
		return
	}
	room := c.reg.lookupRoom(player.RoomID)
	if room == nil {
		return
	}

	room.TypingPlayerID = connID

	c.gateway.ToRoom(room.ID, EventTypingUpdate, TypingUpdatePayload{
		TypingPlayer: connID,
		PlayerName:   player.Name,
	})
}

// ClearTyping clears the typing marker if the caller holds it and notifies the room.
func (c *Coordinator) ClearTyping(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.reg.lookupPlayer(connID)
	if player == nil {
		return
	}
	room := c.reg.lookupRoom(player.RoomID)
	if room == nil || room.TypingPlayerID != connID {
		return
	}

	room.TypingPlayerID = ""

	c.gateway.ToRoom(room.ID, EventTypingUpdate, TypingUpdatePayload{TypingPlayer: ""})
}

// Disconnect removes the caller from its room and the registry. The room is
// destroyed once its last member leaves; otherwise its state stays untouched
// apart from the completion check over the remaining members.
func (c *Coordinator) Disconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reg.lookupPlayer(connID) == nil {
		return
	}

	c.detachFromRoom(connID)
	c.reg.removePlayer(connID)

	c.logger.Info().Str("conn_id", connID).Msg("Client disconnected.")
}

// detachFromRoom removes the caller from its current room, if any: the
// broadcast group drops the connection, the departure is announced, and the
// room is destroyed once empty. For a surviving room the completion check runs
// against the remaining members, since the departure may have left everyone
// finished. Callers hold c.mu.
func (c *Coordinator) detachFromRoom(connID string) {
	player := c.reg.lookupPlayer(connID)
	if player == nil {
		return
	}

	room := c.reg.lookupRoom(player.RoomID)
	if room == nil {
		return
	}

	c.gateway.Leave(room.ID, connID)
	room.removeMember(connID)

	c.gateway.ToRoom(room.ID, EventPlayerLeft, PlayerLeftPayload{PlayerID: connID})

	if room.isEmpty() {
		c.reg.deleteRoom(room.ID)
		c.logger.Info().Str("room_id", room.ID).Msg("Last member left. Room destroyed.")
		return
	}

	c.checkCompletion(room)
}

// checkCompletion finishes the room once every current member has either won
// or exhausted its attempts. Idempotent: a room that is already finished (for
// example via the winner path) is left alone, so game_ended is only broadcast
// on the all-done path and is the sole event revealing the secret word.
func (c *Coordinator) checkCompletion(room *Room) {
	if room.Status == StatusFinished {
		return
	}

	for _, connID := range room.MemberIDs {
		attempts := room.Attempts[connID]
		if len(attempts) >= MaxAttempts {
			continue
		}
		if len(attempts) == 0 || !attempts[len(attempts)-1].IsWinning() {
			return
		}
	}

	room.Status = StatusFinished

	c.gateway.ToRoom(room.ID, EventGameEnded, GameEndedPayload{Word: room.SecretWord})

	c.logger.Info().Str("room_id", room.ID).Msg("All players finished. Round ended.")
}

// broadcastUpdate sends the full room-state snapshot to every member.
func (c *Coordinator) broadcastUpdate(room *Room) {
	players := make([]PlayerSnapshot, 0, len(room.MemberIDs))

	for _, connID := range room.MemberIDs {
		member := c.reg.lookupPlayer(connID)
		if member == nil {
			continue
		}

		attempts := room.Attempts[connID]
		if attempts == nil {
			attempts = []Attempt{}
		}

		players = append(players, PlayerSnapshot{
			ID:            connID,
			Name:          member.Name,
			Attempts:      attempts,
			AttemptsCount: len(attempts),
			IsCreator:     connID == room.CreatorID,
			HasWon:        room.hasWon(connID),
		})
	}

	c.gateway.ToRoom(room.ID, EventGameUpdate, GameUpdatePayload{
		WordLength:   WordLength,
		MaxAttempts:  MaxAttempts,
		Players:      players,
		Status:       room.Status,
		TypingPlayer: room.TypingPlayerID,
	})
}

// isAlphabetic reports whether the word consists solely of uppercase ASCII letters.
func isAlphabetic(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
