package render

import (
	"sort"

	"github.com/ristryder/subtrack/subtitles"
)

// Block is one display-ready unit handed to the presentation surface:
// normalized text, resolved attributes, and the event's layer as a z-order
// hint (higher layers draw later, on top).
type Block struct {
	Text       string
	Attributes Attributes
	Layer      int
}

// StyleLookup resolves an event's style-name reference. Absence must be
// reported via the boolean, not an error.
type StyleLookup func(name string) (*subtitles.StyleRecord, bool)

// Blocks turns a set of active events into display-ready blocks: inline
// markup is stripped, styles are resolved (missing styles degrade to the
// default presentation), and the result is ordered by ascending layer.
func (m *Mapper) Blocks(events []subtitles.DialogueEvent, lookup StyleLookup, context DisplayContext) []Block {
	if len(events) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(events))
	for _, event := range events {
		var style *subtitles.StyleRecord
		if lookup != nil {
			style, _ = lookup(event.StyleName)
		}

		blocks = append(blocks, Block{
			Text:       subtitles.ToDisplayText(event.Text),
			Attributes: m.Resolve(style, context),
			Layer:      event.Layer,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Layer < blocks[j].Layer
	})

	return blocks
}
