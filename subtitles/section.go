package subtitles

import "strings"

type section int32

const (
	SectionNone       section = iota
	SectionScriptInfo section = iota + 1
	SectionStyles     section = iota + 2
	SectionEvents     section = iota + 3
	SectionFonts      section = iota + 4
	SectionGraphics   section = iota + 5
	SectionUnknown    section = iota + 6
)

// classifySection matches a line against the fixed section-header vocabulary,
// case-insensitively. Non-header lines return SectionNone; headers outside
// the vocabulary return SectionUnknown so that lines beneath them are not
// attributed to the previous section.
func classifySection(line string) section {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return SectionNone
	}

	switch strings.ToLower(strings.TrimSpace(trimmed[1 : len(trimmed)-1])) {
	case "script info":
		return SectionScriptInfo
	case "v4 styles", "v4+ styles":
		return SectionStyles
	case "events":
		return SectionEvents
	case "fonts":
		return SectionFonts
	case "graphics":
		return SectionGraphics
	default:
		return SectionUnknown
	}
}
