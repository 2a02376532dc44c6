package render

import "github.com/ristryder/subtrack/subtitles"

// referenceFontSize is the style font size that maps to exactly the base
// size for the viewport; style sizes scale proportionally around it.
const referenceFontSize float64 = 160

// Justify values are ordered left, center, right so an alignment code's
// keypad column maps to them directly.
type Justify int32

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Anchor values are ordered bottom, middle, top, matching the keypad rows.
type Anchor int32

const (
	AnchorBottom Anchor = iota
	AnchorMiddle
	AnchorTop
)

// DisplayContext describes the surface being rendered to: current viewport
// metrics plus the platform class used to pick a base font-size scale.
type DisplayContext struct {
	ViewportWidth  float64
	ViewportHeight float64
	Platform       string
}

// Attributes are the concrete presentation values derived from a style
// record and a display context.
type Attributes struct {
	FontFamily  string
	FontSize    float64
	Color       subtitles.Color
	Bold        bool
	Italic      bool
	Underline   bool
	Justify     Justify
	Anchor      Anchor
	ShadowColor subtitles.Color
	ShadowDepth float64
}

// Mapper derives presentation attributes from style records. Resolve is pure:
// identical (style, context) input always yields identical attributes, so a
// changed active set can be re-rendered deterministically.
type Mapper struct {
	Scale ScaleTable
}

func NewMapper() *Mapper {
	return &Mapper{Scale: DefaultScaleTable()}
}

// Resolve maps a style record to presentation attributes for the given
// display context. A nil style is an expected outcome of the weak style
// reference on events and yields the default presentation: white text,
// neutral weight, bottom-center placement.
func (m *Mapper) Resolve(style *subtitles.StyleRecord, context DisplayContext) Attributes {
	baseFontSize := m.Scale.Factor(context.Platform) * context.ViewportHeight

	if style == nil {
		justify, anchor := decodeAlignment(subtitles.DefaultAlignment)

		return Attributes{
			FontSize: baseFontSize,
			Color:    subtitles.White,
			Justify:  justify,
			Anchor:   anchor,
		}
	}

	fontSize := baseFontSize
	if style.FontSize > 0 {
		fontSize = baseFontSize * style.FontSize / referenceFontSize
	}

	justify, anchor := decodeAlignment(style.Alignment)

	return Attributes{
		FontFamily:  style.FontName,
		FontSize:    fontSize,
		Color:       style.PrimaryColor,
		Bold:        style.Bold,
		Italic:      style.Italic,
		Underline:   style.Underline,
		Justify:     justify,
		Anchor:      anchor,
		ShadowColor: style.OutlineColor,
		ShadowDepth: style.Outline,
	}
}

// decodeAlignment maps a 1-9 numeric-keypad alignment code to a horizontal
// justification and a vertical block anchor: rows 1-3, 4-6, 7-9 are bottom,
// middle, top; columns are left, center, right.
func decodeAlignment(code int) (Justify, Anchor) {
	if code < 1 || code > 9 {
		code = subtitles.DefaultAlignment
	}

	justify := Justify(int32((code - 1) % 3))
	anchor := Anchor(int32((code - 1) / 3))

	return justify, anchor
}
