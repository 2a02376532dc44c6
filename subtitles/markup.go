package subtitles

import (
	"regexp"
	"strings"
)

// Override tags do not nest in the supported subset, so a non-greedy
// match per brace pair is sufficient.
var overrideTag = regexp.MustCompile(`\{[^}]*\}`)

// ToDisplayText strips inline override tags and converts the format's line
// break escapes to real newlines. Tags are removed first, so break escapes
// inside a tag vanish with it. "\N" is a forced break and "\n" a soft break;
// both become "\n" here. No other escape is interpreted.
func ToDisplayText(raw string) string {
	text := overrideTag.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, `\N`, "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")

	return text
}
