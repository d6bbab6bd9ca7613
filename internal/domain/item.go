package domain

import (
	"fmt"
	"strings"
	"time"
)

// Item is one time-bounded entry on the timeline. Start and end are calendar
// dates; both ends are inclusive.
type Item struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Color     string
}

// DurationDays returns the number of whole days between start and end.
func (i Item) DurationDays() int {
	return DaysBetween(i.StartDate, i.EndDate)
}

// Overlaps reports whether the closed intervals of i and other share a day.
// Items that merely touch (one ends the day the other starts) overlap.
func (i Item) Overlaps(other Item) bool {
	return !(i.EndDate.Before(other.StartDate) || other.EndDate.Before(i.StartDate))
}

// Validate checks the fields a store needs before accepting an item.
// The lane packer and geometry code never call it: they take items as given.
func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item ID is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item name is required")
	}
	if i.StartDate.IsZero() || i.EndDate.IsZero() {
		return fmt.Errorf("item %q must have start and end dates", i.Name)
	}
	if i.EndDate.Before(i.StartDate) {
		return fmt.Errorf("item %q ends (%s) before it starts (%s)",
			i.Name, FormatDate(i.EndDate), FormatDate(i.StartDate))
	}
	return nil
}

// ItemPatch is a partial update. Nil fields are left unchanged when the
// patch is merged into an item.
type ItemPatch struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.StartDate == nil && p.EndDate == nil
}

// Apply merges the patch into a copy of item.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.StartDate != nil {
		item.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		item.EndDate = *p.EndDate
	}
	return item
}

// String renders the patch for logs, e.g. "name=Launch start=2024-01-03".
func (p ItemPatch) String() string {
	var parts []string
	if p.Name != nil {
		parts = append(parts, fmt.Sprintf("name=%q", *p.Name))
	}
	if p.StartDate != nil {
		parts = append(parts, "start="+FormatDate(*p.StartDate))
	}
	if p.EndDate != nil {
		parts = append(parts, "end="+FormatDate(*p.EndDate))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

// LaneAssignment is an item tagged with the lane the packer placed it in.
// Assignments are recomputed from scratch whenever the item set changes;
// a lane number is not a stable identity for an item.
type LaneAssignment struct {
	Item
	Lane int
}
