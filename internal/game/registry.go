/*
Package game contains the core coordination logic for multiplayer word-guessing sessions.

This file defines the Registry, the process-wide owner of player and room records.
It keeps three maps mutually consistent: connection id to player, room id to room,
and connection id to room id.
*/
package game

import (
	"time"

	"wordrush/internal/pkg/randx"
)

// Registry owns all active player and room records. It is not safe for
// concurrent use on its own: the Coordinator serializes every mutation behind
// its mutex, so each inbound event observes and commits a consistent view.
// Registries are plain values with no ambient singletons, so tests can run
// several independent instances side by side.
type Registry struct {
	// players maps connection id to the registered player.
	players map[string]*Player

	// rooms maps room id to the active room.
	rooms map[string]*Room

	// playerRoom maps connection id to the room the player belongs to.
	playerRoom map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		players:    make(map[string]*Player),
		rooms:      make(map[string]*Room),
		playerRoom: make(map[string]string),
	}
}

// createRoom allocates a fresh room id, creates the room with the given secret
// word and creator, and registers the creator as its first member.
func (reg *Registry) createRoom(secretWord, creatorID string) (*Room, error) {
	roomID, err := randx.RoomID()
	if err != nil {
		return nil, err
	}

	// The id space is only 9000 values; retry until the draw is collision-free
	// against currently active rooms.
	for {
		if _, taken := reg.rooms[roomID]; !taken {
			break
		}
		roomID, err = randx.RoomID()
		if err != nil {
			return nil, err
		}
	}

	room := &Room{
		ID:         roomID,
		SecretWord: secretWord,
		CreatorID:  creatorID,
		MemberIDs:  []string{creatorID},
		Attempts:   make(map[string][]Attempt),
		Status:     StatusWaiting,
		CreatedAt:  time.Now(),
	}
	reg.rooms[roomID] = room

	return room, nil
}

// registerPlayer records a player and binds its connection to the given room.
func (reg *Registry) registerPlayer(connID, name, roomID string) {
	reg.players[connID] = &Player{
		ConnID: connID,
		Name:   name,
		RoomID: roomID,
	}
	reg.playerRoom[connID] = roomID
}

// removePlayer drops the player record and its room binding. It does not touch
// the room's member list; the coordinator handles membership and teardown.
func (reg *Registry) removePlayer(connID string) {
	delete(reg.players, connID)
	delete(reg.playerRoom, connID)
}

// deleteRoom removes a room record. Called once the last member has left.
func (reg *Registry) deleteRoom(roomID string) {
	delete(reg.rooms, roomID)
}

// lookupPlayer returns the player registered for the connection, or nil.
func (reg *Registry) lookupPlayer(connID string) *Player {
	return reg.players[connID]
}

// lookupRoom returns the active room with the given id, or nil.
func (reg *Registry) lookupRoom(roomID string) *Room {
	return reg.rooms[roomID]
}

// roomOf resolves the room a connection currently belongs to, or nil.
func (reg *Registry) roomOf(connID string) *Room {
	roomID, ok := reg.playerRoom[connID]
	if !ok {
		return nil
	}
	return reg.rooms[roomID]
}
