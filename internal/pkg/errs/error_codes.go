/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrInvalidEventFormat indicates that an inbound socket event was not valid JSON
	// or did not match the expected envelope shape.
	ErrInvalidEventFormat = 1002

	// ErrUnknownEventType indicates that the client sent an event type the server does not handle.
	ErrUnknownEventType = 1003

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1004
)

// 2xxx: Game and Room Business Logic Errors
const (
	// ErrEmptyName indicates that the player supplied an empty display name.
	ErrEmptyName = 2101

	// ErrEmptyRoomID indicates that a join request carried no room id.
	ErrEmptyRoomID = 2102

	// ErrRoomNotFound indicates that the referenced room id does not exist.
	ErrRoomNotFound = 2103

	// ErrRoomNotJoinable indicates that the room has already left the waiting state.
	ErrRoomNotJoinable = 2104

	// ErrPlayerNotFound indicates that the connection has no registered player.
	ErrPlayerNotFound = 2105

	// ErrRoomNotActive indicates that the room is not in the playing state.
	ErrRoomNotActive = 2106
)

// 22xx: Attempt Validation Errors
const (
	// ErrInvalidLength indicates that a submitted attempt is not exactly five letters.
	ErrInvalidLength = 2201

	// ErrInvalidCharacters indicates that a submitted attempt contains non-alphabetic characters.
	ErrInvalidCharacters = 2202

	// ErrNoAttemptsLeft indicates that the player has used all of their attempts.
	ErrNoAttemptsLeft = 2203
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
