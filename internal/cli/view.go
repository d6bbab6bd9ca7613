package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewTimeline ViewID = iota
	ViewForm
)

// View is a screen on the navigation stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
	// CapturesInput reports whether every key should go to the view,
	// bypassing global bindings such as q and esc.
	CapturesInput() bool
}
