package interfaces

import "github.com/ristryder/subtrack/render"

// PresentationSurface draws styled text blocks. ShowBlocks replaces whatever
// is currently displayed; Clear removes everything, for ticks with an empty
// active set.
type PresentationSurface interface {
	ShowBlocks(blocks []render.Block)
	Clear()
}
