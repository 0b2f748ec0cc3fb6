// Package structarith is the runtime support package for code generated by
// the structarith generator.
//
// Generated record types call into this package for every checked arithmetic
// step. It provides:
//
//   - per-width checked helpers (AddUint64, SubUint32, MulDivUint64, ...)
//   - the Uint128 scalar type and its checked helpers
//   - the operation-time error taxonomy (ErrOverflow, ErrUnderflow,
//     ErrDivisionByZero) and the OpError wrapper that names the failing field
//
// A generated record exposes its API through methods such as:
//
//	x := NewTokenMap(10, 20, 30)
//	y, err := x.Add(x)
//	if structarith.IsOverflow(err) {
//	    // the operation was not performed
//	}
//
// Generated code never panics on arithmetic failure; every fallible method
// returns a nil record (or a non-nil error for the assign variants).
package structarith

//go:generate go run internal/gen.go
