// Package bi implements an arbitrary-precision signed integer, Int.
//
// Int is a sign-magnitude value type: a sign bit plus a base-B limb
// vector (least-significant limb first), where B = 2^W and W is 64 by
// default, or 32 under the bi_word32 build tag (see internal/limb for the
// compile-time selection of W). The magnitude vector is always canonical -- no
// leading zero limb, empty iff the value is zero, sign forced positive
// when the magnitude is empty -- after every operation in this package
// returns.
//
// Every fallible operation reports failure through an error wrapping
// *internal/bierr.Error, whose Kind is one of DivisionByZero, Overflow,
// ParseError, InvalidArgument, FromFloat, or AllocFailure (spec §7).
// Failing operations leave their operands unchanged: every kernel below
// builds its result in a fresh buffer and only copies it into a
// caller-visible Int after every fallible step succeeds (the strong
// exception safety guarantee, borrowed from the same swap-on-success
// shape the C++ original uses).
//
// The zero value of Int is the integer 0 and requires no initialization.
// Int contains a slice header, so plain assignment (x = y) shares the
// underlying magnitude array; call Clone when an independent, mutable
// copy is required. In practice this is rarely an issue because every
// mutating method allocates a fresh result buffer rather than writing
// through a shared one.
package bi
