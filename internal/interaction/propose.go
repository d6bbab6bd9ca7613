// Package interaction turns pointer gestures and rename edits into item
// updates.
//
// Nothing here returns an error. A gesture that would produce an invalid or
// unchanged item is dropped silently and the item keeps its last valid
// dates. The only side effect is the UpdateFunc supplied by the caller.
package interaction

import (
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
)

// Mode is the kind of drag in progress.
type Mode string

const (
	ModeMove        Mode = "move"
	ModeResizeStart Mode = "resize-start"
	ModeResizeEnd   Mode = "resize-end"
)

// UpdateFunc receives partial updates for the item store. It is assumed to
// be synchronous; calling it twice with the same arguments must be harmless.
type UpdateFunc func(id string, patch domain.ItemPatch)

// Snapshot holds an item's dates as they were when a gesture started.
type Snapshot struct {
	StartDate time.Time
	EndDate   time.Time
}

// SnapshotOf captures the dates of item.
func SnapshotOf(item domain.Item) Snapshot {
	return Snapshot{StartDate: item.StartDate, EndDate: item.EndDate}
}

// Propose computes the update for shifting snap by deltaDays in the given
// mode, checked against the item's current dates. It returns false when the
// change must be dropped: a resize that would put start on or after end (or
// end on or before start), or a result equal to the current dates.
func Propose(mode Mode, snap Snapshot, current domain.Item, deltaDays int) (domain.ItemPatch, bool) {
	switch mode {
	case ModeMove:
		start := domain.AddDays(snap.StartDate, deltaDays)
		end := domain.AddDays(snap.EndDate, deltaDays)
		if start.Equal(current.StartDate) && end.Equal(current.EndDate) {
			return domain.ItemPatch{}, false
		}
		return domain.ItemPatch{StartDate: &start, EndDate: &end}, true

	case ModeResizeStart:
		start := domain.AddDays(snap.StartDate, deltaDays)
		if !start.Before(current.EndDate) || start.Equal(current.StartDate) {
			return domain.ItemPatch{}, false
		}
		return domain.ItemPatch{StartDate: &start}, true

	case ModeResizeEnd:
		end := domain.AddDays(snap.EndDate, deltaDays)
		if !end.After(current.StartDate) || end.Equal(current.EndDate) {
			return domain.ItemPatch{}, false
		}
		return domain.ItemPatch{EndDate: &end}, true
	}
	return domain.ItemPatch{}, false
}
