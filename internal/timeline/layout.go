// Package timeline recomputes everything derived from the item set and the
// zoom factor in one pass: lane assignment, the visible window, the month
// ruler, and each item's bar.
package timeline

import (
	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/geometry"
	"github.com/alexanderramin/timeline/internal/lanes"
)

// Placed is a lane assignment together with its bar geometry.
type Placed struct {
	domain.LaneAssignment
	Left  float64 // percent of the window
	Width float64 // percent of the window
}

// Layout is the full derived view of a set of items. It holds no reference
// to the items it was built from.
type Layout struct {
	Zoom      float64
	Window    geometry.Window
	Placed    []Placed
	LaneCount int
	Markers   []geometry.Marker
}

// Build computes the layout for items at the given zoom. Zoom is clamped.
func Build(items []domain.Item, zoom float64) Layout {
	zoom = geometry.ClampZoom(zoom)
	window := geometry.ComputeWindow(items, zoom)
	assignments := lanes.Assign(items)

	placed := make([]Placed, len(assignments))
	for i, a := range assignments {
		left, width := geometry.Bar(window, a.Item)
		placed[i] = Placed{LaneAssignment: a, Left: left, Width: width}
	}

	return Layout{
		Zoom:      zoom,
		Window:    window,
		Placed:    placed,
		LaneCount: lanes.Count(assignments),
		Markers:   geometry.MonthMarkers(window),
	}
}

// Rows groups placed items by lane, index = lane.
func (l Layout) Rows() [][]Placed {
	rows := make([][]Placed, l.LaneCount)
	for _, p := range l.Placed {
		rows[p.Lane] = append(rows[p.Lane], p)
	}
	return rows
}

// Find returns the placement of the item with the given id.
func (l Layout) Find(id string) (Placed, bool) {
	for _, p := range l.Placed {
		if p.ID == id {
			return p, true
		}
	}
	return Placed{}, false
}
