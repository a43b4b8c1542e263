package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is matched by every rejected move.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidInput marks malformed external input (move text, solution files, counts).
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration marks a puzzle set up in a way the model does not allow.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrOutOfRange is returned for stool or move indices outside their bounds.
	ErrOutOfRange = errors.New("index out of range")
)

// IllegalMoveError describes a move that was rejected before anything changed.
// Step is the number of moves the puzzle had accepted when this one was tried,
// which during a replay is the index of the offending move.
type IllegalMoveError struct {
	From      int
	To        int
	Step      int
	Violation MoveViolation
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move #%d %d->%d: %s", e.Step, e.From, e.To, e.Violation)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }
