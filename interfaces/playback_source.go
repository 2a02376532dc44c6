package interfaces

// PlaybackSource is the video collaborator's clock: it reports the current
// playback position and load state, and fires status updates that drive
// active-event queries.
type PlaybackSource interface {
	PositionMs() uint64
	DurationMs() uint64
	IsLoaded() bool
	IsPlaying() bool
}

// ViewportSource reports the current display metrics and platform class,
// updated on rotation or resize.
type ViewportSource interface {
	ViewportWidth() float64
	ViewportHeight() float64
	Platform() string
}
