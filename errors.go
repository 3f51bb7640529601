package zzzwe

import "fmt"

// ParseError reports malformed input to a parsing constructor such as [Hex].
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zzzwe: parse %q: %s", e.Input, e.Reason)
}

// UnsupportedPlatformError reports that a rendering backend cannot be
// initialized on the current platform. The library performs no fallback
// between backends; the caller decides what to do next.
type UnsupportedPlatformError struct {
	Backend Backend
	Cause   error
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("zzzwe: %s renderer unavailable on this platform: %v", e.Backend, e.Cause)
}

func (e *UnsupportedPlatformError) Unwrap() error {
	return e.Cause
}
