// Package lineio reads delimited lines from a stream into a caller-owned,
// dynamically growing buffer, replacing the C getdelim routine.
//
// The buffer is passed by reference and reused across calls: its slice
// length is the logical line length on return and its capacity is the
// allocated storage, which doubles on demand. Growth preserves every
// previously written byte, and a refused growth (doubling past the maximum
// slice size) leaves the existing buffer exactly as valid, and exactly as
// long, as before the attempt.
//
// The stream is consumed one byte at a time and never read past the
// delimiter, so sequential calls on the same stream resume where the
// previous line ended. Reads block on I/O availability with no built-in
// timeout; callers needing bounded waits must impose them at the stream
// layer. Interactive concerns such as disabling terminal echo around a read
// belong to that layer too: this package sees only raw bytes.
package lineio
