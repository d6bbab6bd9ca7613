package interaction

import "github.com/alexanderramin/timeline/internal/domain"

// ItemLookup returns the current stored value of an item.
type ItemLookup func(id string) (domain.Item, bool)

// Pointer is the process-wide pointer listener. It is held by at most one
// gesture at a time: a Controller captures it on Begin and releases it on
// End or Close. Move and Up events reach only the holder; with no gesture
// active they are ignored.
type Pointer struct {
	active *Controller
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// Active returns the id of the item being dragged.
func (p *Pointer) Active() (string, bool) {
	if p.active == nil {
		return "", false
	}
	return p.active.itemID, true
}

// Move forwards a pointer position to the active gesture. If the dragged
// item no longer exists the gesture is ended.
func (p *Pointer) Move(x float64, frame Frame, lookup ItemLookup) {
	if p.active == nil {
		return
	}
	current, ok := lookup(p.active.itemID)
	if !ok {
		p.active.End()
		return
	}
	p.active.Move(x, frame, current)
}

// Up ends the active gesture.
func (p *Pointer) Up() {
	if p.active != nil {
		p.active.End()
	}
}

func (p *Pointer) capture(c *Controller) bool {
	if p.active != nil && p.active != c {
		return false
	}
	p.active = c
	return true
}

func (p *Pointer) release(c *Controller) {
	if p.active == c {
		p.active = nil
	}
}
