package subtitles

import "testing"

func TestToDisplayText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tag then forced break", `{\i1}Hi\Nthere`, "Hi\nthere"},
		{"soft break", `one\ntwo`, "one\ntwo"},
		{"plain text untouched", "Hello, world", "Hello, world"},
		{"multiple tags", `{\b1}bold{\b0} and {\i1}italic{\i0}`, "bold and italic"},
		{"karaoke tags", `{\k20}la{\k30}la{\k25}la`, "lalala"},
		{"positioning tag", `{\pos(120,300)}anchored`, "anchored"},
		{"break inside tag vanishes with it", `{\N}text`, "text"},
		{"empty tag", "{}text", "text"},
		{"backslash without escape left verbatim", `a\b`, `a\b`},
		{"empty input", "", ""},
	}

	for _, test := range tests {
		if got := ToDisplayText(test.input); got != test.want {
			t.Errorf("%s: ToDisplayText(%q) = %q, want %q", test.name, test.input, got, test.want)
		}
	}
}

func TestToDisplayText_NonGreedyPerTag(t *testing.T) {
	got := ToDisplayText(`{\i1}keep{\i0} this`)
	if got != "keep this" {
		t.Errorf("tag removal swallowed text between tags: %q", got)
	}
}
