package checked

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required argument is nil or a
	// documented contract is otherwise violated by the caller.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRange is returned when a value or size exceeds what the requested
	// type can represent. Numeric outputs are still written, clamped to the
	// violated bound.
	ErrRange = errors.New("value out of range")

	// ErrBufferLimit is returned when doubling a line buffer would exceed
	// the maximum representable slice size. The existing buffer and its
	// contents are left intact.
	ErrBufferLimit = errors.New("buffer growth limit exceeded")
)

// RangeError reports a conversion whose result does not fit the requested
// type. The output has been clamped to the nearest violated bound; Clamped
// carries that saturated value in decimal form so callers relying on the
// clamp-on-failure contract can recover it from the error alone.
//
// RangeError unwraps to ErrRange.
type RangeError struct {
	Text    string // original input text
	Clamped string // saturated output, decimal form
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %q out of range, clamped to %s", e.Text, e.Clamped)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// StreamError wraps a non-EOF stream fault encountered while reading.
// Bytes read before the fault remain in the caller's buffer.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream error: %v", e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
