/*
Package game contains the core coordination logic for multiplayer word-guessing sessions.

This file defines the in-memory data model: players, rooms, attempts, and the
room status lifecycle.
*/
package game

import "time"

const (
	// WordLength is the fixed length of every secret word and attempt.
	WordLength = 5

	// MaxAttempts is the number of guesses each player gets per round.
	MaxAttempts = 6
)

// Status describes the lifecycle phase of a room. Transitions are one-directional:
// waiting -> playing -> finished. No handler may move a room backward.
type Status string

const (
	// StatusWaiting means the room accepts joins and no guessing has started.
	StatusWaiting Status = "waiting"

	// StatusPlaying means the round is active and members may submit attempts.
	StatusPlaying Status = "playing"

	// StatusFinished is terminal; no further attempts are accepted.
	StatusFinished Status = "finished"
)

// Player represents a connected participant, keyed by its connection id.
type Player struct {
	// ConnID is the opaque, unique identifier of the player's connection.
	ConnID string

	// Name is the trimmed, non-empty display name chosen by the player.
	Name string

	// RoomID is the room this player currently belongs to (at most one).
	RoomID string
}

// Attempt is one submitted guess together with its computed verdict sequence.
// Attempts are append-only; they are never mutated or removed once recorded.
type Attempt struct {
	Word       string         `json:"word"`
	Evaluation []LetterResult `json:"evaluation"`
}

// IsWinning reports whether every letter of the attempt was evaluated as correct.
func (a Attempt) IsWinning() bool {
	for _, lr := range a.Evaluation {
		if lr.Verdict != VerdictCorrect {
			return false
		}
	}
	return len(a.Evaluation) == WordLength
}

// Room holds the full state of one game session.
type Room struct {
	// ID is the short numeric room id shared with players.
	ID string

	// SecretWord is the 5-letter uppercase word to guess. Assigned exactly once
	// at creation and never revealed to clients until the round ends.
	SecretWord string

	// CreatorID is the connection id that created the room; only the creator may
	// start the round.
	CreatorID string

	// MemberIDs is the ordered list of member connection ids. Insertion order is
	// the display order; no duplicates.
	MemberIDs []string

	// Attempts maps a member connection id to its ordered attempt history.
	Attempts map[string][]Attempt

	// Status is the current lifecycle phase.
	Status Status

	// TypingPlayerID holds the connection id currently typing, or "" for nobody.
	// Transient UI signal only.
	TypingPlayerID string

	// WinnerID is set when a member submits a fully-correct attempt.
	WinnerID string

	// CreatedAt records when the room was created. Informational only.
	CreatedAt time.Time
}

// addMember appends a connection id to the member list if not already present.
func (r *Room) addMember(connID string) {
	for _, id := range r.MemberIDs {
		if id == connID {
			return
		}
	}
	r.MemberIDs = append(r.MemberIDs, connID)
}

// removeMember deletes a connection id from the member list, preserving order.
func (r *Room) removeMember(connID string) {
	for i, id := range r.MemberIDs {
		if id == connID {
			r.MemberIDs = append(r.MemberIDs[:i], r.MemberIDs[i+1:]...)
			return
		}
	}
}

// hasWon reports whether the member's most recent attempt is fully correct.
func (r *Room) hasWon(connID string) bool {
	attempts := r.Attempts[connID]
	if len(attempts) == 0 {
		return false
	}
	return attempts[len(attempts)-1].IsWinning()
}

// isEmpty reports whether the room has no members left.
func (r *Room) isEmpty() bool {
	return len(r.MemberIDs) == 0
}
