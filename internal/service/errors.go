package service

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidEntity = errors.New("invalid entity")

	ErrWrongPassword = errors.New("wrong password")
	ErrEmailTaken    = errors.New("email already registered")

	ErrAccountMismatch = errors.New("record does not belong to the authenticated account")

	ErrInvalidConnectionState = errors.New("invalid connection state")
	ErrNotParticipant         = errors.New("user is not a participant of the connection")
	ErrNoPrimaryProfile       = errors.New("no primary profile for user")
)
