/*
Package game contains the core coordination logic for multiplayer word-guessing sessions.

This file defines the BroadcastGateway capability through which the coordinator
delivers named events. The coordinator only calls into the gateway; transport
concerns live entirely behind it.
*/
package game

import "context"

// BroadcastGateway delivers named events to a single connection or to every
// connection joined to a room. Delivery is fire-and-forget: a failure to reach
// an individual connection must never abort a state transition that already
// committed in the registry.
type BroadcastGateway interface {
	// Join adds a connection to a room's broadcast group.
	Join(roomID, connID string)

	// Leave removes a connection from a room's broadcast group.
	Leave(roomID, connID string)

	// ToConn delivers a named event to one connection.
	ToConn(connID, event string, payload any)

	// ToRoom delivers a named event to every connection in the room's group.
	ToRoom(roomID, event string, payload any)
}

// WordSource supplies secret words for new rooms. Implementations must always
// return a usable 5-letter uppercase word, falling back internally on any
// provider failure.
type WordSource interface {
	FetchWord(ctx context.Context) string
}
