package cli

import "github.com/alexanderramin/timeline/internal/domain"

type queuedPatch struct {
	id    string
	patch domain.ItemPatch
}

// saveQueue is the single writer between the timeline view and the store.
// Patches for the same item are merged, so only the latest value of each
// field is written. At most one batch is in flight; patches added meanwhile
// wait for the next one.
type saveQueue struct {
	order    []string
	pending  map[string]domain.ItemPatch
	inflight []queuedPatch
	saving   bool
}

func newSaveQueue() *saveQueue {
	return &saveQueue{pending: make(map[string]domain.ItemPatch)}
}

// add records patch for id. Fields set in patch override earlier ones.
func (q *saveQueue) add(id string, patch domain.ItemPatch) {
	prev, ok := q.pending[id]
	if !ok {
		q.order = append(q.order, id)
	}
	q.pending[id] = mergePatch(prev, patch)
}

// take starts a batch with everything pending. It returns nil while a
// batch is already in flight or nothing is pending.
func (q *saveQueue) take() []queuedPatch {
	if q.saving || len(q.order) == 0 {
		return nil
	}
	batch := make([]queuedPatch, 0, len(q.order))
	for _, id := range q.order {
		batch = append(batch, queuedPatch{id: id, patch: q.pending[id]})
	}
	q.order = nil
	q.pending = make(map[string]domain.ItemPatch)
	q.inflight = batch
	q.saving = true
	return batch
}

// done marks the in-flight batch as stored.
func (q *saveQueue) done() {
	q.inflight = nil
	q.saving = false
}

// reset drops everything, stored or not.
func (q *saveQueue) reset() {
	q.order = nil
	q.pending = make(map[string]domain.ItemPatch)
	q.done()
}

// overlay applies unsaved patches to items freshly read from the store, so
// a reload never shows a value older than the one on screen.
func (q *saveQueue) overlay(items []domain.Item) []domain.Item {
	apply := func(id string, patch domain.ItemPatch) {
		for i := range items {
			if items[i].ID == id {
				items[i] = patch.Apply(items[i])
				return
			}
		}
	}
	for _, p := range q.inflight {
		apply(p.id, p.patch)
	}
	for _, id := range q.order {
		apply(id, q.pending[id])
	}
	return items
}

func mergePatch(base, next domain.ItemPatch) domain.ItemPatch {
	if next.Name != nil {
		base.Name = next.Name
	}
	if next.StartDate != nil {
		base.StartDate = next.StartDate
	}
	if next.EndDate != nil {
		base.EndDate = next.EndDate
	}
	return base
}
