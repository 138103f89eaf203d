// Package bierr defines the tagged-variant error surface for the bi
// package. Every failure the library can report is one of a flat, closed
// set of Kinds carried by a single Error type, rather than a family of
// unrelated typed errors, since the library's failure modes are a closed
// enum, not an open set of application-level concerns. The wrapping and
// errors.Is/errors.As conventions follow the standard library's own
// (fmt.Errorf("%w", ...), Unwrap() support).
package bierr

import "fmt"

// Kind identifies which of the six failure conditions this package
// distinguishes occurred.
type Kind int

const (
	// DivisionByZero: the divisor is zero in /, %, or div.
	DivisionByZero Kind = iota
	// Overflow: a result would require more limbs than MaxLimbs, or an
	// intermediate size computation would exceed the host's size-type
	// capacity.
	Overflow
	// ParseError: to_int(s, base) failed on malformed input.
	ParseError
	// InvalidArgument: base outside [2,36], or a negative exponent passed
	// to Pow.
	InvalidArgument
	// FromFloat: conversion from a NaN or infinite float64.
	FromFloat
	// AllocFailure: the host allocator refused a requested capacity.
	AllocFailure
)

func (k Kind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "overflow"
	case ParseError:
		return "parse error"
	case InvalidArgument:
		return "invalid argument"
	case FromFloat:
		return "from float"
	case AllocFailure:
		return "allocation failure"
	default:
		return "unknown error"
	}
}

// Error is the single tagged-variant error type returned by every
// fallible operation in the bi package. It always carries a Kind and a
// human-readable message, and may wrap an underlying cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bi: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("bi: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, so that
// callers can write errors.Is(err, bierr.New(bierr.DivisionByZero, "")) or,
// more idiomatically, errors.Is(err, bierr.ErrDivisionByZero) using the
// package-level sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind, formatted message, and
// wrapped cause.
func Wrap(cause error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinels for errors.Is comparisons against a specific kind,
// independent of message text.
var (
	ErrDivisionByZero  = &Error{Kind: DivisionByZero, Msg: "divisor is zero"}
	ErrOverflow        = &Error{Kind: Overflow, Msg: "result exceeds representable magnitude"}
	ErrParseError      = &Error{Kind: ParseError, Msg: "malformed input"}
	ErrInvalidArgument = &Error{Kind: InvalidArgument, Msg: "invalid argument"}
	ErrFromFloat       = &Error{Kind: FromFloat, Msg: "NaN or infinite float"}
	ErrAllocFailure    = &Error{Kind: AllocFailure, Msg: "allocator refused request"}
)
