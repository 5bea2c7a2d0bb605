package numparse

import (
	"fmt"

	"github.com/hupe1980/checked"
)

func isDec(c byte) bool { return c >= '0' && c <= '9' }

// isHexLetter reports whether c is a hex-only digit.
func isHexLetter(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isMarker reports whether c is one of the literal hex markers. Markers are
// punctuation, not digits, but force base-16 selection.
func isMarker(c byte) bool {
	return c == 'x' || c == 'X' || c == 'h' || c == 'H'
}

// splitInteger classifies s into a numeric prefix, a base, and a unit
// remainder. unitOK tells whether a unit slot was supplied by the caller.
//
// Precedence: with a unit slot, a maximal run of decimal digits followed by
// an exact whitelist match wins over hex reclassification. This pins down
// inputs like "98f" (Temperature), where 'f' is both a hex digit and a
// whitelisted suffix.
func splitInteger(s string, unitOK bool, cat Category) (digits string, base int, unit string, err error) {
	if s == "" {
		return "", 0, "", fmt.Errorf("%w: empty input", checked.ErrInvalidArgument)
	}

	if unitOK {
		i := 0
		for i < len(s) && isDec(s[i]) {
			i++
		}
		if i > 0 && i < len(s) && isUnit(cat, s[i:]) {
			return s[:i], 10, s[i:], nil
		}
	}

	hex := false
	i := 0
scan:
	for i < len(s) {
		c := s[i]
		switch {
		case isDec(c):
		case isHexLetter(c), isMarker(c):
			hex = true
		default:
			break scan
		}
		i++
	}

	rest := s[i:]
	if rest != "" {
		if !unitOK {
			return "", 0, "", fmt.Errorf("%w: trailing characters %q in %q", checked.ErrInvalidArgument, rest, s)
		}
		if !isUnit(cat, rest) {
			return "", 0, "", fmt.Errorf("%w: %q is not an accepted %s unit", checked.ErrInvalidArgument, rest, cat)
		}
	}

	base = 10
	if hex {
		base = 16
	}
	return s[:i], base, rest, nil
}

// stripMarkers removes the hex notation around the digits proper: a leading
// "0x" and a trailing "h". Embedded markers stay and make the native
// conversion reject the token.
func stripMarkers(digits string, base int) (string, error) {
	if base == 16 {
		if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
			digits = digits[2:]
		}
		if n := len(digits); n > 0 && (digits[n-1] == 'h' || digits[n-1] == 'H') {
			digits = digits[:n-1]
		}
	}
	if digits == "" {
		return "", fmt.Errorf("%w: no digits consumed", checked.ErrInvalidArgument)
	}
	return digits, nil
}

// splitFloat consumes a decimal floating-point prefix: digits, an optional
// fraction, and an optional exponent (taken only when it carries digits of
// its own). The remainder is the unit candidate.
func splitFloat(s string) (prefix, rest string, err error) {
	i := 0
	digits := false
	for i < len(s) && isDec(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDec(s[i]) {
			i++
			digits = true
		}
	}
	if digits && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDec(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	if !digits {
		return "", "", fmt.Errorf("%w: no digits consumed", checked.ErrInvalidArgument)
	}
	return s[:i], s[i:], nil
}

// splitSign strips a single leading sign. Unsigned parses never call this.
func splitSign(s string) (sign, body string) {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[:1], s[1:]
	}
	return "", s
}
