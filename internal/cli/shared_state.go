package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// headerLines is the height of the title and separator above the view.
const headerLines = 2

// ContentHeight returns the rows left for the active view between the
// header and the two-line status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerLines - 2
	if h < 1 {
		return 1
	}
	return h
}
