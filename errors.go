/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
)

// ErrUnknownGameType is fatal at room creation time; no room is constructed
// for a game type missing from the handler registry.
var ErrUnknownGameType = errors.New("unknown game type")

// ErrGameTypeMismatch is returned when a connection requests an existing
// room under a different game type than the one it was created with.
var ErrGameTypeMismatch = errors.New("room exists with a different game type")

// ValidationError covers malformed or out-of-range input, such as voting
// for an option that is not part of the current question. It is recovered
// locally: an error message goes to the offending connection only, and room
// state is left unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AuthorizationError covers a non-host attempting a host-only action.
// It is always answered with an explicit error reply, never dropped
// silently.
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("only the host may %s", e.Action)
}
