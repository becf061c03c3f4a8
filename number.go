package cliparse

import (
	"regexp"
	"strconv"
)

var (
	decimalPattern = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?$`)
	hexPattern     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	// Leading zeros are kept as strings: 0755 and 01234 are identifiers more often than numbers.
	leadingZeroPattern = regexp.MustCompile(`^[-+]?0\d`)
)

// parseNumber reports whether s is a numeric literal and returns its value. Decimal, exponent and
// 0x-prefixed hexadecimal literals are recognized.
func parseNumber(s string) (float64, bool) {
	if hexPattern.MatchString(s) {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	if !decimalPattern.MatchString(s) || leadingZeroPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// looksNegative reports whether an argument that starts with a dash is a negative number rather
// than a short flag.
func looksNegative(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, ok := parseNumber(arg)
	return ok || (arg[1] >= '0' && arg[1] <= '9')
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
