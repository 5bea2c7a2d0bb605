package numparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/checked"
)

// Uint64 parses s as an unsigned 64-bit value. This is the wide parse every
// narrower unsigned request cascades through. unit may be nil, in which
// case the whole token must be numeric; otherwise the captured suffix
// (possibly empty) is written to *unit whenever classification succeeds.
func Uint64(s string, unit *string, cat Category) (uint64, error) {
	digits, base, u, err := splitInteger(s, unit != nil, cat)
	if err != nil {
		return 0, err
	}
	digits, err = stripMarkers(digits, base)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseUint(digits, base, 64)
	if perr != nil {
		if errors.Is(perr, strconv.ErrRange) {
			// strconv already clamped v to the violated bound.
			setUnit(unit, u)
			return v, &checked.RangeError{Text: s, Clamped: strconv.FormatUint(v, 10)}
		}
		return 0, fmt.Errorf("%w: %q is not a valid number", checked.ErrInvalidArgument, s)
	}
	setUnit(unit, u)
	return v, nil
}

// Int64 parses s as a signed 64-bit value. A single leading sign is
// accepted ahead of the numeric token.
func Int64(s string, unit *string, cat Category) (int64, error) {
	sign, body := splitSign(s)
	digits, base, u, err := splitInteger(body, unit != nil, cat)
	if err != nil {
		return 0, err
	}
	digits, err = stripMarkers(digits, base)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseInt(sign+digits, base, 64)
	if perr != nil {
		if errors.Is(perr, strconv.ErrRange) {
			setUnit(unit, u)
			return v, &checked.RangeError{Text: s, Clamped: strconv.FormatInt(v, 10)}
		}
		return 0, fmt.Errorf("%w: %q is not a valid number", checked.ErrInvalidArgument, s)
	}
	setUnit(unit, u)
	return v, nil
}

// Uint32 parses s, cascading through Uint64 plus a range check.
func Uint32(s string, unit *string, cat Category) (uint32, error) {
	v, err := narrowUnsigned(s, unit, cat, math.MaxUint32)
	return uint32(v), err
}

// Uint16 parses s, cascading through Uint64 plus a range check.
func Uint16(s string, unit *string, cat Category) (uint16, error) {
	v, err := narrowUnsigned(s, unit, cat, math.MaxUint16)
	return uint16(v), err
}

// Uint8 parses s, cascading through Uint64 plus a range check.
func Uint8(s string, unit *string, cat Category) (uint8, error) {
	v, err := narrowUnsigned(s, unit, cat, math.MaxUint8)
	return uint8(v), err
}

// Uint parses s into the platform-native unsigned integer width.
func Uint(s string, unit *string, cat Category) (uint, error) {
	v, err := narrowUnsigned(s, unit, cat, math.MaxUint)
	return uint(v), err
}

// Int32 parses s, cascading through Int64 plus a range check.
func Int32(s string, unit *string, cat Category) (int32, error) {
	v, err := narrowSigned(s, unit, cat, math.MinInt32, math.MaxInt32)
	return int32(v), err
}

// Int16 parses s, cascading through Int64 plus a range check.
func Int16(s string, unit *string, cat Category) (int16, error) {
	v, err := narrowSigned(s, unit, cat, math.MinInt16, math.MaxInt16)
	return int16(v), err
}

// Int8 parses s, cascading through Int64 plus a range check.
func Int8(s string, unit *string, cat Category) (int8, error) {
	v, err := narrowSigned(s, unit, cat, math.MinInt8, math.MaxInt8)
	return int8(v), err
}

// Int parses s into the platform-native signed integer width.
func Int(s string, unit *string, cat Category) (int, error) {
	v, err := narrowSigned(s, unit, cat, math.MinInt, math.MaxInt)
	return int(v), err
}

// Float64 parses s at the widest native floating-point precision.
func Float64(s string, unit *string, cat Category) (float64, error) {
	sign, body := splitSign(s)
	prefix, rest, err := splitFloat(body)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		if unit == nil {
			return 0, fmt.Errorf("%w: trailing characters %q in %q", checked.ErrInvalidArgument, rest, s)
		}
		if !isUnit(cat, rest) {
			return 0, fmt.Errorf("%w: %q is not an accepted %s unit", checked.ErrInvalidArgument, rest, cat)
		}
	}
	v, perr := strconv.ParseFloat(sign+prefix, 64)
	if perr != nil {
		if errors.Is(perr, strconv.ErrRange) {
			v = clampFinite64(v)
			setUnit(unit, rest)
			return v, &checked.RangeError{Text: s, Clamped: strconv.FormatFloat(v, 'g', -1, 64)}
		}
		return 0, fmt.Errorf("%w: %q is not a valid number", checked.ErrInvalidArgument, s)
	}
	setUnit(unit, rest)
	return v, nil
}

// Float32 parses s, cascading through Float64 plus a range check.
func Float32(s string, unit *string, cat Category) (float32, error) {
	v, err := Float64(s, unit, cat)
	if err != nil {
		var re *checked.RangeError
		if errors.As(err, &re) {
			c := clampTo32(v)
			return c, &checked.RangeError{Text: s, Clamped: strconv.FormatFloat(float64(c), 'g', -1, 32)}
		}
		return 0, err
	}
	if v > math.MaxFloat32 || v < -math.MaxFloat32 {
		c := clampTo32(v)
		return c, &checked.RangeError{Text: s, Clamped: strconv.FormatFloat(float64(c), 'g', -1, 32)}
	}
	return float32(v), nil
}

// narrowUnsigned performs the downcast cascade for unsigned widths: parse
// wide, then check [0, max]. Violations still write a value, clamped to the
// violated bound.
func narrowUnsigned(s string, unit *string, cat Category, max uint64) (uint64, error) {
	v, err := Uint64(s, unit, cat)
	if err != nil {
		var re *checked.RangeError
		if errors.As(err, &re) {
			if v > max {
				v = max
			}
			return v, &checked.RangeError{Text: s, Clamped: strconv.FormatUint(v, 10)}
		}
		return 0, err
	}
	if v > max {
		return max, &checked.RangeError{Text: s, Clamped: strconv.FormatUint(max, 10)}
	}
	return v, nil
}

// narrowSigned performs the downcast cascade for signed widths.
func narrowSigned(s string, unit *string, cat Category, min, max int64) (int64, error) {
	v, err := Int64(s, unit, cat)
	if err != nil {
		var re *checked.RangeError
		if errors.As(err, &re) {
			if v > max {
				v = max
			}
			if v < min {
				v = min
			}
			return v, &checked.RangeError{Text: s, Clamped: strconv.FormatInt(v, 10)}
		}
		return 0, err
	}
	if v > max {
		return max, &checked.RangeError{Text: s, Clamped: strconv.FormatInt(max, 10)}
	}
	if v < min {
		return min, &checked.RangeError{Text: s, Clamped: strconv.FormatInt(min, 10)}
	}
	return v, nil
}

func setUnit(unit *string, u string) {
	if unit != nil {
		*unit = u
	}
}

// clampFinite64 replaces the infinities strconv reports on overflow with
// the nearest representable bound.
func clampFinite64(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}

func clampTo32(v float64) float32 {
	switch {
	case v > math.MaxFloat32:
		return math.MaxFloat32
	case v < -math.MaxFloat32:
		return -math.MaxFloat32
	default:
		return float32(v)
	}
}
