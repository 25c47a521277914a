/*
Package randx provides functions for generating cryptographically secure random identifiers.

It generates the short numeric room ids handed to players and the UUID connection ids
assigned to every WebSocket session.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// RoomIDLength is the fixed length of a generated room id.
	RoomIDLength = 4

	// roomIDMin is the smallest valid room id value (inclusive).
	roomIDMin = 1000

	// roomIDSpan is the number of possible room id values (1000-9999).
	roomIDSpan = 9000
)

// RoomID generates a random 4-digit numeric room id using crypto/rand.
// The id space is intentionally small so ids are easy to share verbally;
// uniqueness against active rooms is enforced by the caller.
func RoomID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(roomIDSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number for room id: %v", err)
	}

	return fmt.Sprintf("%d", roomIDMin+n.Int64()), nil
}

// ConnectionID generates a UUID v4 string to serve as the unique handle for a connection.
func ConnectionID() string {
	return uuid.New().String()
}

// IsValidRoomID checks if the given string is a well-formed room id:
// exactly RoomIDLength digits with a non-zero leading digit.
func IsValidRoomID(id string) bool {
	if len(id) != RoomIDLength {
		return false
	}

	for i, char := range id {
		if char < '0' || char > '9' {
			return false
		}
		if i == 0 && char == '0' {
			return false
		}
	}

	return true
}
