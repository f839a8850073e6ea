package core

// OverlayContent is the full-screen overlay model the shell composes
// and the renderer draws: a title, free-form body lines, and an
// optional card of aligned key-value rows for run stats.
type OverlayContent struct {
	Title string
	Lines []string
	Card  []CardEntry
}

// CardEntry is a single key-value row within the overlay card
type CardEntry struct {
	Key   string
	Value string
}
