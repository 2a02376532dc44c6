package subtitles

import (
	"sort"
	"strings"

	"github.com/ristryder/subtrack/common"
)

const (
	dialoguePrefix     = "Dialogue:"
	dialogueFieldCount = 10
)

// DialogueEvent is one timed line of subtitle text. StyleName is a weak
// reference resolved against the style table at render time; it is not
// required to exist. Events are immutable once parsed.
type DialogueEvent struct {
	Layer          int
	StartMs        uint64
	EndMs          uint64
	StyleName      string
	Speaker        string
	MarginLeft     int
	MarginRight    int
	MarginVertical int
	Effect         string
	Text           string
}

// EventTrack holds dialogue events sorted ascending by start time. Sort order
// for events sharing a start time is unspecified.
type EventTrack struct {
	events []DialogueEvent
}

// ParseEvents reads every "Dialogue:" line inside the events section. A line
// is split into at most ten fields so the final text field keeps any commas
// the dialogue itself contains; lines with fewer than ten fields are dropped
// without error.
func ParseEvents(lines []string) *EventTrack {
	track := &EventTrack{}
	currentSection := SectionNone

	for _, line := range lines {
		if sectionKind := classifySection(line); sectionKind != SectionNone {
			currentSection = sectionKind
			continue
		}
		if currentSection != SectionEvents {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, dialoguePrefix) {
			continue
		}

		if event, ok := parseDialogueLine(strings.TrimPrefix(trimmed, dialoguePrefix)); ok {
			track.events = append(track.events, event)
		}
	}

	sort.Slice(track.events, func(i, j int) bool {
		return track.events[i].StartMs < track.events[j].StartMs
	})

	return track
}

func parseDialogueLine(input string) (DialogueEvent, bool) {
	fields := common.SplitBounded(input, ",", dialogueFieldCount)
	if len(fields) < dialogueFieldCount {
		return DialogueEvent{}, false
	}

	for i := 0; i < dialogueFieldCount-1; i++ {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return DialogueEvent{
		Layer:          common.IntOrDefault(fields[0], 0),
		StartMs:        ParseTimestamp(fields[1]),
		EndMs:          ParseTimestamp(fields[2]),
		StyleName:      fields[3],
		Speaker:        fields[4],
		MarginLeft:     common.IntOrDefault(fields[5], DefaultMargin),
		MarginRight:    common.IntOrDefault(fields[6], DefaultMargin),
		MarginVertical: common.IntOrDefault(fields[7], DefaultMargin),
		Effect:         fields[8],
		Text:           strings.TrimSpace(fields[9]),
	}, true
}

// ActiveAt returns every event whose [start, end] interval contains ms, both
// endpoints included — an event is still active at the instant equal to its
// end time. An event with end before start never matches. The result is
// recomputed per call; an empty result is an empty slice, never an error.
func (e *EventTrack) ActiveAt(ms uint64) []DialogueEvent {
	if e == nil {
		return nil
	}

	var active []DialogueEvent
	for _, event := range e.events {
		if event.StartMs > ms {
			break
		}
		if ms <= event.EndMs {
			active = append(active, event)
		}
	}

	return active
}

// Events returns the full time-ordered event collection.
func (e *EventTrack) Events() []DialogueEvent {
	if e == nil {
		return nil
	}

	return e.events
}

func (e *EventTrack) Len() int {
	if e == nil {
		return 0
	}

	return len(e.events)
}

// EndMs returns the largest event end time, the effective length of the
// track. Zero when no events loaded.
func (e *EventTrack) EndMs() uint64 {
	if e == nil {
		return 0
	}

	var end uint64
	for _, event := range e.events {
		if event.EndMs > end {
			end = event.EndMs
		}
	}

	return end
}
