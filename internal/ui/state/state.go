package state

// AppState contains all the application state
type AppState struct {
	// Search state
	Query      string   // current search query
	Candidates []string // full candidate snapshot from the source
	Filtered   []string // candidates matching the query, candidate order

	// Highlight state
	Highlight int // index into Filtered of the highlighted row

	// UI state
	ViewportOffset int    // offset for scrolling the filtered list
	ViewportHeight int    // available height for the list
	StatusMessage  string // status bar message
	LastError      error  // most recent source failure, cleared on success

	// Lifecycle
	Quitting bool // set when the quit key is pressed
}

// NewAppState creates a new application state
func NewAppState(candidates []string) *AppState {
	return &AppState{
		Candidates:     candidates,
		Filtered:       candidates,
		Highlight:      0,
		ViewportHeight: 20, // Default, updated on the first WindowSizeMsg
	}
}

// HighlightedItem returns the currently highlighted candidate, or ""
// when the filtered list is empty
func (s *AppState) HighlightedItem() string {
	if s.Highlight < 0 || s.Highlight >= len(s.Filtered) {
		return ""
	}
	return s.Filtered[s.Highlight]
}

// EnsureVisible adjusts the viewport offset so the highlight stays on
// screen
func (s *AppState) EnsureVisible() {
	if s.ViewportHeight <= 0 {
		return
	}
	if s.Highlight < s.ViewportOffset {
		s.ViewportOffset = s.Highlight
	}
	if s.Highlight >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.Highlight - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}
