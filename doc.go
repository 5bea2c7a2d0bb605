// Package checked provides defensive replacements for unsafe or
// platform-inconsistent C standard-library operations.
//
// Every primitive validates its arguments, detects overflow, and reports
// failure through typed errors instead of invoking undefined behavior.
// The three primitives live in their own packages and share only the error
// contract defined here:
//
//   - search: bounds-checked linear find / find-or-append over caller-owned
//     element tables (lfind/lsearch equivalents)
//   - numparse: cascading, overflow-safe text-to-number conversion with
//     optional unit-suffix recognition
//   - lineio: overflow-safe, dynamically growing delimited-line reader
//     (getdelim equivalent)
//
// # Error Contract
//
// Contract violations (nil required argument, oversized count) are reported
// as ErrInvalidArgument. Representability violations are reported as
// ErrRange; for numeric parsing the offending output is still written,
// clamped to the violated bound, and the bound is carried on RangeError so
// best-effort callers receive a deterministic saturated value rather than
// garbage. A failed find is not an error: search.Find returns a nil pointer
// and a nil error.
//
// # Concurrency
//
// All operations are synchronous pure functions of their inputs. Concurrent
// calls are safe as long as each call operates on disjoint tables, buffers,
// and streams. There is no process-wide error cell; every failure is
// returned from the call that detected it.
//
// # Quick Start
//
//	n, _ := numparse.Uint32("0x1A", nil, numparse.None)       // 26
//
//	var unit string
//	kb, _ := numparse.Uint64("64KB", &unit, numparse.DataSize) // 64, "KB"
//
//	var line []byte
//	n, err := lineio.ReadDelimited(&line, '\n', stream)        // line[:n]
package checked
