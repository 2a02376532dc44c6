package subtitles

import (
	"strings"

	"github.com/ristryder/subtrack/common"
)

const stylePrefix = "Style:"

// Defaults substituted for style fields that are absent or malformed.
const (
	DefaultFontSize    float64 = 16
	DefaultScale       float64 = 100
	DefaultBorderStyle int     = 1
	DefaultAlignment   int     = 2
	DefaultMargin      int     = 0
)

// StyleRecord is one named presentation style parsed from the styles section.
// Records are immutable once parsed.
type StyleRecord struct {
	Name           string
	FontName       string
	FontSize       float64
	PrimaryColor   Color
	SecondaryColor Color
	OutlineColor   Color
	BackColor      Color
	Bold           bool
	Italic         bool
	Underline      bool
	Strikeout      bool
	ScaleX         float64
	ScaleY         float64
	Spacing        float64
	Angle          float64
	BorderStyle    int
	Outline        float64
	Shadow         float64
	Alignment      int
	MarginLeft     int
	MarginRight    int
	MarginVertical int
}

// StyleTable stores style records keyed by name. A later style with the same
// name overwrites an earlier one.
type StyleTable struct {
	styles map[string]*StyleRecord
}

// ParseStyles reads every "Style:" line inside the styles section. Lines with
// fewer than 16 comma-separated fields are dropped without error, and
// malformed field values fall back to the documented defaults.
func ParseStyles(lines []string) *StyleTable {
	table := &StyleTable{styles: map[string]*StyleRecord{}}
	currentSection := SectionNone

	for _, line := range lines {
		if sectionKind := classifySection(line); sectionKind != SectionNone {
			currentSection = sectionKind
			continue
		}
		if currentSection != SectionStyles {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, stylePrefix) {
			continue
		}

		if style := parseStyleLine(strings.TrimPrefix(trimmed, stylePrefix)); style != nil {
			table.styles[style.Name] = style
		}
	}

	return table
}

func parseStyleLine(input string) *StyleRecord {
	fields := strings.Split(input, ",")
	if len(fields) < 16 {
		return nil
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	field := func(index int) string {
		if index >= len(fields) {
			return ""
		}

		return fields[index]
	}

	alignment := common.IntOrDefault(field(18), DefaultAlignment)
	if alignment < 1 || alignment > 9 {
		alignment = DefaultAlignment
	}

	return &StyleRecord{
		Name:           field(0),
		FontName:       field(1),
		FontSize:       common.FloatOrDefault(field(2), DefaultFontSize),
		PrimaryColor:   ParseColor(field(3)),
		SecondaryColor: ParseColor(field(4)),
		OutlineColor:   ParseColor(field(5)),
		BackColor:      ParseColor(field(6)),
		Bold:           common.BoolFlag(field(7)),
		Italic:         common.BoolFlag(field(8)),
		Underline:      common.BoolFlag(field(9)),
		Strikeout:      common.BoolFlag(field(10)),
		ScaleX:         common.FloatOrDefault(field(11), DefaultScale),
		ScaleY:         common.FloatOrDefault(field(12), DefaultScale),
		Spacing:        common.FloatOrDefault(field(13), 0),
		Angle:          common.FloatOrDefault(field(14), 0),
		BorderStyle:    common.IntOrDefault(field(15), DefaultBorderStyle),
		Outline:        common.FloatOrDefault(field(16), 0),
		Shadow:         common.FloatOrDefault(field(17), 0),
		Alignment:      alignment,
		MarginLeft:     common.IntOrDefault(field(19), DefaultMargin),
		MarginRight:    common.IntOrDefault(field(20), DefaultMargin),
		MarginVertical: common.IntOrDefault(field(21), DefaultMargin),
	}
}

// Get looks a style up by name. Absence is an expected outcome: dialogue
// events reference styles by plain string keys that are not required to
// resolve.
func (s *StyleTable) Get(name string) (*StyleRecord, bool) {
	if s == nil {
		return nil, false
	}

	style, found := s.styles[name]

	return style, found
}

func (s *StyleTable) Len() int {
	if s == nil {
		return 0
	}

	return len(s.styles)
}

// Names returns the style names in no particular order.
func (s *StyleTable) Names() []string {
	if s == nil {
		return nil
	}

	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}

	return names
}
