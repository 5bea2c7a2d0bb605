// Package search provides bounds-checked linear scan and insertion over
// caller-owned element tables, replacing the C lfind and lsearch routines.
//
// A table is a full-capacity slice plus a separate logical count. The slice
// length is the capacity the caller has reserved; the count is how many
// elements are live. Find scans the live elements front-to-back and never
// mutates the count. FindOrAppend additionally copies the key into the slot
// past the last live element on a miss and increments the count; the caller
// must have reserved room for at least one more element.
//
// Comparators follow the three-way-compare convention: a return of zero
// signals a match. Only the zero case is observed. The WithArg variants
// thread an explicit opaque argument into every comparison instead of
// relying on closure capture, which keeps hot comparators allocation-free.
package search
