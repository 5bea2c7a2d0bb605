package lineio

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/checked"
)

// DefaultCapacity is the baseline buffer size allocated when the caller
// passes a nil or zero-capacity buffer.
const DefaultCapacity = 128

// ReadDelimited reads bytes from r up to and including delim into *line,
// growing the buffer as needed, and returns the number of bytes stored.
//
// On return (*line)[:n] holds the line. The delimiter is included when one
// was read; end-of-stream with at least one byte buffered yields the final
// unterminated fragment as a complete result. End-of-stream with nothing
// buffered returns io.EOF. The buffer always keeps one spare byte past the
// line holding a zero terminator, so cap(*line) >= n+1.
//
// Non-EOF stream faults are returned as *checked.StreamError; the bytes
// read before the fault remain in the buffer. A refused growth returns
// ErrBufferLimit with the buffer and its contents intact. In every case the
// caller retains ownership of *line.
func ReadDelimited(line *[]byte, delim byte, r io.Reader) (int, error) {
	if line == nil {
		return 0, fmt.Errorf("%w: line buffer reference is nil", checked.ErrInvalidArgument)
	}
	if r == nil {
		return 0, fmt.Errorf("%w: stream is nil", checked.ErrInvalidArgument)
	}

	buf := *line
	if cap(buf) == 0 {
		buf = make([]byte, 0, DefaultCapacity)
	}
	full := buf[:cap(buf)]
	n := 0

	var one [1]byte
	for {
		// Room for the next byte plus the terminator.
		if cap(full)-n < 2 {
			grown, err := double(full, n)
			if err != nil {
				*line = full[:n]
				return n, err
			}
			full = grown
		}

		rn, rerr := r.Read(one[:])
		if rn > 0 {
			c := one[0]
			full[n] = c
			n++
			if c == delim {
				full[n] = 0
				*line = full[:n]
				return n, nil
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				if n == 0 {
					*line = full[:0]
					return 0, io.EOF
				}
				full[n] = 0
				*line = full[:n]
				return n, nil
			}
			full[n] = 0
			*line = full[:n]
			return n, &checked.StreamError{Err: rerr}
		}
	}
}

// double grows the buffer to twice its capacity, preserving the first n
// bytes. The replacement is built before anything is swapped, so a refused
// or failed growth never invalidates the original.
func double(full []byte, n int) ([]byte, error) {
	c := cap(full)
	if c > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: doubling a %s buffer exceeds the maximum slice size",
			checked.ErrBufferLimit, humanize.IBytes(uint64(c)))
	}
	next := make([]byte, 2*c)
	copy(next, full[:n])
	return next, nil
}
