package common

import (
	"reflect"
	"testing"
)

func TestDecodeText_BomAndLineEndings(t *testing.T) {
	raw := []byte("\xef\xbb\xbffirst\r\nsecond\rthird\nfourth")

	text, decodeErr := DecodeText(raw)
	if decodeErr != nil {
		t.Fatalf("DecodeText returned error: %v", decodeErr)
	}

	if text != "first\nsecond\nthird\nfourth" {
		t.Errorf("DecodeText = %q, want BOM stripped and every line ending normalized", text)
	}
}

func TestDecodeLines(t *testing.T) {
	lines, decodeErr := DecodeLines([]byte("\xef\xbb\xbfone\r\ntwo\r\n"))
	if decodeErr != nil {
		t.Fatalf("DecodeLines returned error: %v", decodeErr)
	}

	want := []string{"one", "two", ""}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("DecodeLines = %q, want %q", lines, want)
	}
}

func TestDecodeText_Utf8MultibytePassesThrough(t *testing.T) {
	raw := []byte("\xef\xbb\xbfRésumé — 字幕\n")

	text, decodeErr := DecodeText(raw)
	if decodeErr != nil {
		t.Fatalf("DecodeText returned error: %v", decodeErr)
	}

	if text != "Résumé — 字幕\n" {
		t.Errorf("DecodeText = %q, want the UTF-8 content unchanged", text)
	}
}
