package subtrack

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ristryder/subtrack/common"
	"github.com/ristryder/subtrack/subtitles"
)

// ScriptInfo carries the informational headers of the script info section.
// PlayResX/PlayResY are recorded but do not drive presentation; sizing comes
// from the live display context.
type ScriptInfo struct {
	Title    string
	PlayResX int
	PlayResY int
}

// Track is a parsed subtitle track: the style table plus the time-ordered
// dialogue events. A Track is built once and read-only afterwards; to reload
// a subtitle file, build a new Track and swap the reference. All query
// methods tolerate a nil receiver so that "no track loaded" is a valid
// steady state answering every query with an empty result.
type Track struct {
	Info ScriptInfo

	styles *subtitles.StyleTable
	events *subtitles.EventTrack
}

// LoadTrack parses subtitle definition lines into a Track. Malformed lines
// are dropped and malformed fields fall back to defaults; the only load
// failure is input with no content at all.
func LoadTrack(lines []string) (*Track, error) {
	if isBlank(lines) {
		return nil, errors.New("subtitle track is empty")
	}

	return &Track{
		Info:   parseScriptInfo(lines),
		styles: subtitles.ParseStyles(lines),
		events: subtitles.ParseEvents(lines),
	}, nil
}

// LoadTrackBytes decodes raw file bytes (any detectable charset, any line
// ending convention) and parses them into a Track.
func LoadTrackBytes(data []byte) (*Track, error) {
	lines, decodeErr := common.DecodeLines(data)
	if decodeErr != nil {
		return nil, decodeErr
	}

	return LoadTrack(lines)
}

// LoadTrackFile reads path through a memory-mapped stream and parses the
// contents into a Track.
func LoadTrackFile(path string) (*Track, error) {
	stream, streamErr := common.NewFileStream(path)
	if streamErr != nil {
		return nil, streamErr
	}
	defer stream.Close()

	data, readErr := stream.ReadAll()
	if readErr != nil {
		return nil, errors.Wrapf(readErr, "failed to read subtitle file %s", path)
	}

	track, loadErr := LoadTrackBytes(data)
	if loadErr != nil {
		return nil, errors.Wrapf(loadErr, "failed to load subtitle file %s", path)
	}

	return track, nil
}

// ActiveAt returns the events whose interval contains ms, both endpoints
// inclusive. Safe to call repeatedly from a playback tick; no state
// accumulates between calls.
func (t *Track) ActiveAt(ms uint64) []subtitles.DialogueEvent {
	if t == nil {
		return nil
	}

	return t.events.ActiveAt(ms)
}

// Style resolves a style name from an event's weak reference. The boolean
// reports absence, which callers must treat as "use default presentation".
func (t *Track) Style(name string) (*subtitles.StyleRecord, bool) {
	if t == nil {
		return nil, false
	}

	return t.styles.Get(name)
}

// Styles returns the track's style table.
func (t *Track) Styles() *subtitles.StyleTable {
	if t == nil {
		return nil
	}

	return t.styles
}

// Events returns the track's time-ordered event collection.
func (t *Track) Events() []subtitles.DialogueEvent {
	if t == nil {
		return nil
	}

	return t.events.Events()
}

// DurationMs returns the end time of the last-ending event.
func (t *Track) DurationMs() uint64 {
	if t == nil {
		return 0
	}

	return t.events.EndMs()
}

func parseScriptInfo(lines []string) ScriptInfo {
	info := ScriptInfo{}
	inScriptInfo := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inScriptInfo = strings.EqualFold(trimmed, "[Script Info]")
			continue
		}
		if !inScriptInfo {
			continue
		}

		key, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}

		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			info.Title = value
		case "playresx":
			info.PlayResX = common.IntOrDefault(value, 0)
		case "playresy":
			info.PlayResY = common.IntOrDefault(value, 0)
		}
	}

	return info
}

func isBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}

	return true
}
