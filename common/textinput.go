package common

import (
	"strings"

	"github.com/andybalholm/crlf"
	"github.com/cockroachdb/errors"
	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DecodeText converts raw subtitle file bytes to UTF-8 text with "\n" line
// endings. The source charset is detected when possible; when detection or
// the IANA lookup fails the bytes are assumed to already be UTF-8, since
// rejecting the file outright would lose subtitles a lenient parser could
// still read.
func DecodeText(data []byte) (string, error) {
	text := string(stripUtf8Bom(data))

	detected, detectErr := chardet.NewTextDetector().DetectBest(data)
	if detectErr == nil && detected.Charset != "UTF-8" {
		if encoding, encodingErr := ianaindex.MIB.Encoding(detected.Charset); encodingErr == nil && encoding != nil {
			decoded, _, transformErr := transform.Bytes(encoding.NewDecoder(), data)
			if transformErr != nil {
				return "", errors.Wrapf(transformErr, "failed to decode %s text", detected.Charset)
			}

			text = string(stripUtf8Bom(decoded))
		}
	}

	normalized, _, normalizeErr := transform.String(new(crlf.Normalize), text)
	if normalizeErr != nil {
		return "", errors.Wrap(normalizeErr, "failed to normalize line endings")
	}

	return normalized, nil
}

// DecodeLines is DecodeText split into individual lines.
func DecodeLines(data []byte) ([]string, error) {
	text, decodeErr := DecodeText(data)
	if decodeErr != nil {
		return nil, decodeErr
	}

	return strings.Split(text, "\n"), nil
}

func stripUtf8Bom(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xef && data[1] == 0xbb && data[2] == 0xbf {
		return data[3:]
	}

	return data
}
