// Package errors provides sentinel errors and error types for the rules
// engine. It defines the rejection reasons the core can return and a
// structured wrapper that preserves move context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core's rejection outcomes.
// Use these with errors.Is() to check for specific conditions.
var (
	// ErrIllegalMove indicates an attempted move absent from the legal
	// move set. The position is unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNothingToUndo indicates an undo with an empty move history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrGameOver indicates an operation on a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates malformed square coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps a rejection with the move context that produced it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying sentinel
	From string // Source square text
	To   string // Destination square text
	Ply  int    // 1-based ply at which the rejection occurred
}

// Error returns a formatted message including the move context.
func (e *MoveError) Error() string {
	if e.From != "" || e.To != "" {
		if e.Ply > 0 {
			return fmt.Sprintf("move %s%s (ply %d): %v", e.From, e.To, e.Ply, e.Err)
		}
		return fmt.Sprintf("move %s%s: %v", e.From, e.To, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
