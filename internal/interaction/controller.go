package interaction

import (
	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/geometry"
)

// State is the drag state of one item.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Frame is what a pointer position is measured against: the visible window
// and the on-screen width of the track it is drawn on.
type Frame struct {
	Window         geometry.Window
	ContainerWidth float64
}

// Controller is the drag state machine for one item.
//
// Begin moves it from Idle to Dragging and captures the process-wide
// Pointer. Every Move is measured from the anchor captured by Begin, not
// from the last emitted value, so rounding never compounds over a gesture.
// End (or Close, on teardown) returns it to Idle and releases the Pointer.
type Controller struct {
	itemID  string
	pointer *Pointer
	update  UpdateFunc

	state   State
	mode    Mode
	anchorX float64
	anchor  Snapshot
}

// NewController creates an idle controller for the item with the given id.
func NewController(itemID string, pointer *Pointer, update UpdateFunc) *Controller {
	return &Controller{itemID: itemID, pointer: pointer, update: update}
}

func (c *Controller) ItemID() string { return c.itemID }
func (c *Controller) State() State   { return c.state }

// Mode returns the active drag mode, or "" when idle.
func (c *Controller) Mode() Mode { return c.mode }

// Begin starts a gesture at horizontal coordinate x. It returns false and
// stays idle if the controller is already dragging, item is not the
// controller's item, or another gesture holds the pointer.
func (c *Controller) Begin(mode Mode, x float64, item domain.Item) bool {
	if c.state != StateIdle || item.ID != c.itemID {
		return false
	}
	if !c.pointer.capture(c) {
		return false
	}
	c.state = StateDragging
	c.mode = mode
	c.anchorX = x
	c.anchor = SnapshotOf(item)
	return true
}

// Move applies the pointer at x to the item. current is the item as the
// store holds it now; it decides whether a resize is valid and whether the
// result differs from what is already stored.
func (c *Controller) Move(x float64, frame Frame, current domain.Item) {
	if c.state != StateDragging {
		return
	}
	delta := geometry.DeltaDays(frame.Window, x-c.anchorX, frame.ContainerWidth)
	patch, ok := Propose(c.mode, c.anchor, current, delta)
	if !ok {
		return
	}
	c.update(c.itemID, patch)
}

// End finishes the gesture regardless of whether any move was committed.
func (c *Controller) End() {
	if c.state != StateDragging {
		return
	}
	c.state = StateIdle
	c.mode = ""
	c.anchor = Snapshot{}
	c.pointer.release(c)
}

// Close tears the controller down, ending any gesture in flight.
func (c *Controller) Close() {
	c.End()
}
