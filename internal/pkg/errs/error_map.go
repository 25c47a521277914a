/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
outbound error events and HTTP responses.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:      {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrInvalidEventFormat: {Code: ErrInvalidEventFormat, Message: "Invalid event format."},
	ErrUnknownEventType:   {Code: ErrUnknownEventType, Message: "Unknown event type."},
	ErrRateLimitExceeded:  {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Game and Room Business Logic Errors
	ErrEmptyName:       {Code: ErrEmptyName, Message: "Enter your name"},
	ErrEmptyRoomID:     {Code: ErrEmptyRoomID, Message: "Enter game ID"},
	ErrRoomNotFound:    {Code: ErrRoomNotFound, Message: "Game not found"},
	ErrRoomNotJoinable: {Code: ErrRoomNotJoinable, Message: "Game already started"},
	ErrPlayerNotFound:  {Code: ErrPlayerNotFound, Message: "Player not found"},
	ErrRoomNotActive:   {Code: ErrRoomNotActive, Message: "Game not active"},

	// 22xx: Attempt Validation Errors
	ErrInvalidLength:     {Code: ErrInvalidLength, Message: "Word must be 5 letters"},
	ErrInvalidCharacters: {Code: ErrInvalidCharacters, Message: "Only letters allowed"},
	ErrNoAttemptsLeft:    {Code: ErrNoAttemptsLeft, Message: "No more attempts left"},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
