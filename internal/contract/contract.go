// Package contract reports caller bugs. Builds tagged navdebug panic on a
// violation so misuse surfaces during development; release builds log the
// violation and let the caller degrade to a no-op.
package contract

import (
	"fmt"
	"log/slog"
)

// Violation describes a broken caller contract.
type Violation struct {
	Op     string
	Reason string
}

func (v Violation) Error() string {
	return v.Op + ": " + v.Reason
}

// Check reports a violation when ok is false and returns ok unchanged, so
// call sites read as guards:
//
//	if !contract.Check(i >= 0, "select index", "negative index") {
//		return
//	}
func Check(ok bool, op, format string, args ...any) bool {
	if ok {
		return true
	}
	Fail(op, format, args...)
	return false
}

// Fail reports a violation unconditionally.
func Fail(op, format string, args ...any) {
	v := Violation{Op: op, Reason: fmt.Sprintf(format, args...)}
	if strict {
		panic(v)
	}
	slog.Warn("contract violation", "op", v.Op, "reason", v.Reason)
}

// Strict reports whether violations panic in this build.
func Strict() bool {
	return strict
}
