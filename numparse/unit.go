package numparse

// Category selects the unit-suffix whitelist applied to a parsed token.
// The zero value None accepts no suffix at all.
type Category int

const (
	None Category = iota
	DataSize
	SectorType
	Time
	Power
	Volts
	Amps
	Temperature
)

// Whitelists are exact-match: suffixes are compared byte-for-byte, never
// case-folded or localized.
var unitWhitelist = map[Category][]string{
	DataSize:    {"B", "KB", "KiB", "MB", "MiB", "GB", "GiB", "TB", "TiB", "BLOCKS", "SECTORS"},
	SectorType:  {"n", "e", "Kn", "Ke"},
	Time:        {"ns", "us", "ms", "s", "m", "h"},
	Power:       {"W", "mW", "kW"},
	Volts:       {"V", "mV"},
	Amps:        {"A", "mA"},
	Temperature: {"c", "f", "k"},
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case DataSize:
		return "datasize"
	case SectorType:
		return "sectortype"
	case Time:
		return "time"
	case Power:
		return "power"
	case Volts:
		return "volts"
	case Amps:
		return "amps"
	case Temperature:
		return "temperature"
	default:
		return "unknown"
	}
}

// Categories returns every category that carries a unit whitelist.
func Categories() []Category {
	return []Category{DataSize, SectorType, Time, Power, Volts, Amps, Temperature}
}

// Units returns a copy of the accepted suffix strings for cat.
func Units(cat Category) []string {
	us := unitWhitelist[cat]
	out := make([]string, len(us))
	copy(out, us)
	return out
}

// isUnit reports whether s is acceptable as the captured unit for cat.
// The empty string is always acceptable and means "no suffix present".
func isUnit(cat Category, s string) bool {
	if s == "" {
		return true
	}
	for _, u := range unitWhitelist[cat] {
		if u == s {
			return true
		}
	}
	return false
}
