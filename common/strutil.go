package common

import "strings"

// SplitBounded splits input on sep into at most max fields. The last field
// captures the unsplit remainder, separators included, so free text containing
// the separator survives intact.
func SplitBounded(input string, sep string, max int) []string {
	if max < 1 {
		return nil
	}

	return strings.SplitN(input, sep, max)
}

func Substr(input string, start int, length int) string {
	inputRunes := []rune(input)

	if start >= len(inputRunes) {
		return ""
	}

	if start+length > len(inputRunes) {
		length = len(inputRunes) - start
	}

	return string(inputRunes[start : start+length])
}

func SubstrAll(input string, start int) string {
	inputRunes := []rune(input)

	if start >= len(inputRunes) {
		return ""
	}

	return string(inputRunes[start:])
}
