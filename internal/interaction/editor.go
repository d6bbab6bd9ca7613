package interaction

import (
	"strings"

	"github.com/alexanderramin/timeline/internal/domain"
)

// Editor is the rename flow: Idle -> Editing -> Idle, left by Commit or
// Cancel. It is independent of dragging.
type Editor struct {
	update  UpdateFunc
	editing bool
	itemID  string
	draft   string
}

func NewEditor(update UpdateFunc) *Editor {
	return &Editor{update: update}
}

// Begin starts editing item, seeding the draft with its current name.
func (e *Editor) Begin(item domain.Item) {
	e.editing = true
	e.itemID = item.ID
	e.draft = item.Name
}

func (e *Editor) Editing() bool  { return e.editing }
func (e *Editor) ItemID() string { return e.itemID }
func (e *Editor) Draft() string  { return e.draft }

// SetDraft replaces the draft text. Ignored when not editing.
func (e *Editor) SetDraft(s string) {
	if e.editing {
		e.draft = s
	}
}

// Commit leaves the editing state and emits a rename if the trimmed draft
// is non-empty and differs from current's name. It reports whether an
// update was emitted.
func (e *Editor) Commit(current domain.Item) bool {
	if !e.editing {
		return false
	}
	name := strings.TrimSpace(e.draft)
	id := e.itemID
	e.reset()

	if name == "" || name == current.Name || current.ID != id {
		return false
	}
	e.update(id, domain.ItemPatch{Name: &name})
	return true
}

// Cancel discards the draft.
func (e *Editor) Cancel() {
	e.reset()
}

func (e *Editor) reset() {
	e.editing = false
	e.itemID = ""
	e.draft = ""
}
