package common

import (
	"strconv"
	"strings"
)

// Permissive field parsing: malformed input yields the caller's documented
// default instead of an error, keeping the lenient-parse policy explicit
// and testable in one place.

func IntOrDefault(input string, def int) int {
	value, parseErr := strconv.Atoi(strings.TrimSpace(input))
	if parseErr != nil {
		return def
	}

	return value
}

func FloatOrDefault(input string, def float64) float64 {
	value, parseErr := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if parseErr != nil {
		return def
	}

	return value
}

// BoolFlag reports whether input is the literal "-1", the encoding used for
// true by the style format. Anything else, including garbage, is false.
func BoolFlag(input string) bool {
	return strings.TrimSpace(input) == "-1"
}
