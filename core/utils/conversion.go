package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a query value. Unparseable values convert to 0.
func ToInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

// ToBool reports whether a query value is "1", "true", "yes" or "on", ignoring case.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Clamp bounds v to [lo, hi], using def when v is not positive.
func Clamp(v, def, lo, hi int) int {
	if v <= 0 {
		v = def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
