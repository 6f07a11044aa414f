package services

import "errors"

// Core error taxonomy. Handlers map these onto HTTP statuses with errors.Is,
// so services wrap them (fmt.Errorf("%w: ...")) rather than returning bare
// strings.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrBadRequest   = errors.New("bad request")
)
