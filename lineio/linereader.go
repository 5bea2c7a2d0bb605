package lineio

import "io"

type options struct {
	delim           byte
	initialCapacity int
}

// Option configures a Reader.
type Option func(*options)

// WithDelimiter sets the byte that terminates a line. Defaults to '\n'.
func WithDelimiter(delim byte) Option {
	return func(o *options) {
		o.delim = delim
	}
}

// WithInitialCapacity sets the buffer capacity allocated before the first
// read. Values below 1 fall back to DefaultCapacity.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultCapacity
		}
		o.initialCapacity = n
	}
}

// Reader wraps a stream with an owned line buffer, reusing and growing it
// across calls. It is a convenience layer over ReadDelimited for callers
// that do not want to manage the buffer themselves; the growth and failure
// contract is identical.
//
// A Reader must not be used from multiple goroutines concurrently.
type Reader struct {
	r     io.Reader
	delim byte
	buf   []byte
}

// New creates a Reader over r.
func New(r io.Reader, optFns ...Option) *Reader {
	o := options{
		delim:           '\n',
		initialCapacity: DefaultCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Reader{
		r:     r,
		delim: o.delim,
		buf:   make([]byte, 0, o.initialCapacity),
	}
}

// ReadLine returns the next delimited line, delimiter included. The
// returned slice aliases the Reader's buffer and is valid until the next
// call. At end of stream a final unterminated fragment is returned as a
// complete line; after that, ReadLine returns io.EOF.
func (lr *Reader) ReadLine() ([]byte, error) {
	n, err := ReadDelimited(&lr.buf, lr.delim, lr.r)
	if err != nil {
		return nil, err
	}
	return lr.buf[:n], nil
}
