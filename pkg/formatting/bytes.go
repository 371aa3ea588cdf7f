// Package formatting provides parsing and rendering of human-readable
// byte sizes used throughout configuration.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

var byteUnits = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// ParseBytes converts a human-readable size string such as "1MB" or
// "512 KB" into a byte count. Unit matching is case-insensitive and an
// optional space between number and unit is allowed. A bare number is
// treated as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	split := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			split = i
			break
		}
	}

	number := strings.TrimSpace(s[:split])
	unit := strings.ToUpper(strings.TrimSpace(s[split:]))

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}

	if unit == "" {
		return int64(value), nil
	}

	factor, ok := byteUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unknown byte size unit %q", unit)
	}

	return int64(value * float64(factor)), nil
}

// FormatBytes renders a byte count as a human-readable string using the
// largest unit that keeps the value at or above one.
func FormatBytes(n int64) string {
	if n < 0 {
		return fmt.Sprintf("%d B", n)
	}

	order := []string{"TB", "GB", "MB", "KB"}
	for _, unit := range order {
		factor := byteUnits[unit]
		if n >= factor {
			value := strconv.FormatFloat(float64(n)/float64(factor), 'f', 1, 64)
			return strings.TrimSuffix(value, ".0") + " " + unit
		}
	}

	return fmt.Sprintf("%d B", n)
}
