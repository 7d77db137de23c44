package chessmg

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrInvalidFEN indicates a malformed or impossible FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidMove indicates move text that is malformed or matches no move in the position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInconsistent indicates that a board's cached state no longer matches its squares.
	ErrInconsistent = errors.New("inconsistent board")
)

// FENError describes which part of a FEN string was rejected and why.
type FENError struct {
	Field  string // placement, side, castling, en passant, halfmove, fullmove
	Value  string // the offending text
	Reason string
}

func (e *FENError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid FEN: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid FEN: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidFEN.
func (e *FENError) Unwrap() error { return ErrInvalidFEN }

func fenError(field, value, reason string) error {
	return &FENError{Field: field, Value: value, Reason: reason}
}

func invalidMove(text, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidMove, text, reason)
}

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...))
}
