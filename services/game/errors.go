package game

import "errors"

// User-facing validation errors. Handlers forward the message verbatim in the
// ack payload, so the texts are part of the wire contract.
var (
	ErrNameRequired     = errors.New("Name required")
	ErrInvalidJoin      = errors.New("Invalid code or name")
	ErrInvalidCode      = errors.New("Room code may only contain letters and numbers.")
	ErrCodeTaken        = errors.New("This room code is already taken!")
	ErrRoomNotFound     = errors.New("No game found with that code!")
	ErrAlreadyJoined    = errors.New("You are already in this game.")
	ErrNameTaken        = errors.New("Name already taken.")
	ErrRoomFull         = errors.New("This room is already full (max 2 players).")
	ErrRolesMissing     = errors.New("Please assign Guesser and Explainer first.")
	ErrEmptyWord        = errors.New("Word required.")
	ErrInvalidWord      = errors.New("Invalid word.")
	ErrNoWordsAvailable = errors.New("No words available.")
)
