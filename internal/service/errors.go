package service

import "errors"

// Expected domain outcomes. Handlers map these to user-facing failures;
// anything else is an internal fault.
var (
	ErrRoomNotFound        = errors.New("game room not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidEntryCode    = errors.New("invalid entry code")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrInsufficientTokens  = errors.New("no spin tokens available")
	ErrNoRewardsAvailable  = errors.New("no rewards available")
	ErrValidation          = errors.New("validation failed")
)
