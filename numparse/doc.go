// Package numparse converts text to numeric values of a specific width and
// signedness, with base auto-detection and optional unit-suffix capture.
//
// Tokens are classified in a single pass. A token of decimal digits parses
// in base 10. Hex digits, or the markers 'x'/'h' (punctuation, not digits,
// but they force hex mode), switch the token to base 16. Any other
// character disqualifies the token unless a unit slot was supplied, in
// which case the remainder must exactly match the whitelist of the
// requested Category.
//
// Narrow widths cascade through the widest parse for their signedness
// (uint64, int64 or float64) followed by a range check. An out-of-range
// value fails, but the returned value is clamped to the violated bound
// rather than left as garbage. This clamp-on-failure behavior is a
// deliberate contract: callers performing best-effort parsing may ignore
// the error and still receive a deterministic, saturated value. The bound
// is also carried on checked.RangeError.
//
// # Unit Suffixes
//
//	var unit string
//	v, err := numparse.Uint64("64KB", &unit, numparse.DataSize)
//	// v == 64, unit == "KB"
//
// The captured unit is the literal suffix; no multiplier is applied. When a
// unit slot is supplied and the token carries no suffix, the captured unit
// is the empty string. When a decimal prefix is followed by an exact
// whitelist match, the unit reading wins over hex reclassification, so
// "98f" with Temperature is 98 with unit "f", not 0x98F.
package numparse
