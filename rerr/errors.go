// Package rerr holds the error taxonomy described by the core spec (§7):
// recoverable rejections are plain bool returns elsewhere in this module;
// this package is only for the two categories that need a distinguishable
// Go error value — unsupported configurations and fatal programmer errors.
package rerr

import "github.com/pkg/errors"

// ErrUnsupported is returned (never panicked) for a recognized-but-not-
// implemented request option, such as frequency-based trips in profile
// routing (§4.7).
var ErrUnsupported = errors.New("unsupported configuration")

// Unsupported wraps ErrUnsupported with a reason, preserving errors.Is.
func Unsupported(reason string) error {
	return errors.Wrap(ErrUnsupported, reason)
}

// Fatal panics with a wrapped error carrying a stack trace, for the
// programmer-error category of §7 (broken invariants, not bad input). It is
// named Fatal rather than Panic to read as "this request is over", matching
// the spec's "aborts the current request" propagation policy.
func Fatal(reason string) {
	panic(errors.New(reason))
}

// Fataf is the Printf-style sibling of Fatal.
func Fataf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}
