package state

import "github.com/pkg/errors"

// Errors returned by the operations that change the game. They are usually wrapped with
// some context, so use errors.Is to check for them.
//
// A game is never modified by an operation that returns an error.
var (
	ErrInsufficientFood = errors.New("insufficient resources")
	ErrOccupied         = errors.New("location occupied")
	ErrUnknownAntKind   = errors.New("unknown defender kind")
	ErrIllegalLocation  = errors.New("illegal location")
	ErrUnknownBoost     = errors.New("unknown boost")
	ErrNoAnt            = errors.New("no defender here")
)
