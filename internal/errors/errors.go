// Package errors provides sentinel errors and error types for the chess core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation indicates a position the rules engine cannot
	// judge, such as one with a missing king. It points at a bug upstream.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidSquare indicates malformed algebraic square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMovetext indicates a move list that cannot be tokenised,
	// e.g. an unterminated comment or unbalanced variation.
	ErrInvalidMovetext = errors.New("invalid movetext")
)

// DecodeError reports a malformed FEN field. No partial position is ever
// returned alongside it.
type DecodeError struct {
	Field  string // FEN field name, e.g. "placement" or "castling"
	Value  string // The raw field text
	Reason string // What was wrong with it
}

// Error returns a formatted error message naming the offending field.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%v: field %s %q", ErrInvalidFEN, e.Field, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns ErrInvalidFEN so callers can test with errors.Is().
func (e *DecodeError) Unwrap() error {
	return ErrInvalidFEN
}

// IllegalMoveError reports a move that is not in the legal set of a position.
type IllegalMoveError struct {
	Move   string // Move text as supplied or rendered
	FEN    string // The position the move was tried in
	Reason string
}

// Error returns a formatted error message including all available context.
func (e *IllegalMoveError) Error() string {
	parts := []string{fmt.Sprintf("%v %q", ErrIllegalMove, e.Move)}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns ErrIllegalMove.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// InvariantViolation reports an internal inconsistency found while judging
// a position. It should be treated as fatal to the operation.
type InvariantViolation struct {
	Reason string
	FEN    string
}

// Error returns a formatted error message.
func (e *InvariantViolation) Error() string {
	if e.FEN != "" {
		return fmt.Sprintf("%v: %s in %q", ErrInvariantViolation, e.Reason, e.FEN)
	}
	return fmt.Sprintf("%v: %s", ErrInvariantViolation, e.Reason)
}

// Unwrap returns ErrInvariantViolation.
func (e *InvariantViolation) Unwrap() error {
	return ErrInvariantViolation
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

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
