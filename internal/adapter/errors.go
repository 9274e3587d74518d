package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRemoteUnavailable wraps transport-level failures: refused
	// connections, DNS errors, timeouts. The repository facade treats it
	// as "offline" and serves the local cache instead.
	ErrRemoteUnavailable = errors.New("remote unavailable")
)
