package filter

import (
	"errors"
	"fmt"
)

const maxSyntaxMessage = 256

// Sentinel errors, use errors.Is to match the typed errors below.
var (
	ErrSyntax              = errors.New("filter: invalid JSON")
	ErrTooDeep             = errors.New("filter: nested too deeply")
	ErrUnknownKey          = errors.New("filter: unknown key")
	ErrTypeMismatch        = errors.New("filter: type mismatch")
	ErrMissingOperator     = errors.New("filter: missing operator")
	ErrConflictingOperator = errors.New("filter: conflicting operators")
	ErrUnexpectedShape     = errors.New("filter: unexpected shape")
	ErrInvalidSQL          = errors.New("filter: invalid SQL")
)

// SyntaxError is returned when the input is not valid JSON.
type SyntaxError struct {
	Err error
}

func (e SyntaxError) Error() string {
	msg := e.Err.Error()
	if len(msg) > maxSyntaxMessage {
		// fastjson repeats its context once per nesting level, the cause is at the end.
		msg = "..." + msg[len(msg)-maxSyntaxMessage:]
	}
	return fmt.Sprintf("invalid JSON: %s", msg)
}

func (e SyntaxError) Unwrap() error        { return e.Err }
func (e SyntaxError) Is(target error) bool { return target == ErrSyntax }

// TooDeepError is returned for well-formed JSON nested deeper than the decoder
// supports, see MaxOperatorDepth.
type TooDeepError struct {
	Depth int
	Limit int
}

func (e TooDeepError) Error() string {
	return fmt.Sprintf("filter nested too deeply: JSON depth %d exceeds %d (at most %d operators)", e.Depth, e.Limit, MaxOperatorDepth)
}

func (e TooDeepError) Is(target error) bool { return target == ErrTooDeep }

type UnknownKeyError struct {
	Path string
	Key  string
}

func (e UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key at %s: %q", e.Path, e.Key)
}

func (e UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// TypeMismatchError is returned when a recognized key holds a value of the
// wrong kind, e.g. "and" mapped to a string.
type TypeMismatchError struct {
	Path  string
	Key   string
	Want  string
	Value any
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid value at %s (must be %s): %s", e.Path, e.Want, describe(e.Value))
}

func (e TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

type MissingOperatorError struct {
	Path string
}

func (e MissingOperatorError) Error() string {
	return fmt.Sprintf("missing operator at %s (must have %q or %q)", e.Path, keyAnd, keyOr)
}

func (e MissingOperatorError) Is(target error) bool { return target == ErrMissingOperator }

type ConflictingOperatorError struct {
	Path string
}

func (e ConflictingOperatorError) Error() string {
	return fmt.Sprintf("conflicting operators at %s (%q and %q cannot be combined)", e.Path, keyAnd, keyOr)
}

func (e ConflictingOperatorError) Is(target error) bool { return target == ErrConflictingOperator }

// UnexpectedShapeError is returned when an expression is neither a string nor
// an object, e.g. a bare boolean inside an "and" array.
type UnexpectedShapeError struct {
	Path  string
	Value any
}

func (e UnexpectedShapeError) Error() string {
	return fmt.Sprintf("unexpected %s at %s (must be a string or an object)", describe(e.Value), e.Path)
}

func (e UnexpectedShapeError) Is(target error) bool { return target == ErrUnexpectedShape }

// InvalidSQLError is returned by Check when a condition is not a valid
// PostgreSQL WHERE condition.
type InvalidSQLError struct {
	Condition string
	Err       error
}

func (e InvalidSQLError) Error() string {
	return fmt.Sprintf("invalid SQL condition %q: %v", e.Condition, e.Err)
}

func (e InvalidSQLError) Unwrap() error        { return e.Err }
func (e InvalidSQLError) Is(target error) bool { return target == ErrInvalidSQL }
