package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/timeline/internal/teatest"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Test terminal size. A 132-column screen leaves a 128-cell track, so a
// 32-day window is exactly 4 cells per day.
const (
	testWidth  = 132
	testHeight = 30
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sizes the terminal and drains Init,
// which loads items synchronously from the in-memory store.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(testWidth, testHeight))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

// Status returns the transient status bar text.
func (d *TestDriver) Status() string {
	return d.appModel().status
}

// Timeline returns the timeline view at the bottom of the stack.
func (d *TestDriver) Timeline() *timelineView {
	return d.appModel().viewStack[0].(*timelineView)
}

// PlainView returns the rendered screen without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
