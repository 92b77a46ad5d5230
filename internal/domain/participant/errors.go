package participant

import "errors"

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUsernameExists      = errors.New("username already registered")
	ErrEmailExists         = errors.New("email already registered")
)
