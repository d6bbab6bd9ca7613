package interaction

import (
	"testing"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateCall struct {
	id    string
	patch domain.ItemPatch
}

// fakeStore merges patches the way the real store does and records calls.
type fakeStore struct {
	items map[string]domain.Item
	calls []updateCall
}

func newFakeStore(items ...domain.Item) *fakeStore {
	s := &fakeStore{items: make(map[string]domain.Item)}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *fakeStore) update(id string, patch domain.ItemPatch) {
	s.calls = append(s.calls, updateCall{id: id, patch: patch})
	s.items[id] = patch.Apply(s.items[id])
}

func (s *fakeStore) lookup(id string) (domain.Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

func mkItem(id, start, end string) domain.Item {
	return domain.Item{
		ID:        id,
		Name:      "Item " + id,
		StartDate: domain.MustParseDate(start),
		EndDate:   domain.MustParseDate(end),
	}
}

// tenPxPerDay is a 10-day window drawn on a 100px track.
var tenPxPerDay = Frame{
	Window: geometry.Window{
		Start:     domain.MustParseDate("2024-01-01"),
		End:       domain.MustParseDate("2024-01-11"),
		TotalDays: 10,
	},
	ContainerWidth: 100,
}

func setup(items ...domain.Item) (*fakeStore, *Registry) {
	store := newFakeStore(items...)
	return store, NewRegistry(NewPointer(), store.update)
}

func TestController_MoveShiftsBothDatesByDelta(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-02", "2024-01-06"))
	c := reg.For("a")

	require.True(t, c.Begin(ModeMove, 50, store.items["a"]))
	assert.Equal(t, StateDragging, c.State())
	assert.Equal(t, ModeMove, c.Mode())

	reg.Pointer().Move(80, tenPxPerDay, store.lookup)

	require.Len(t, store.calls, 1)
	got := store.items["a"]
	assert.Equal(t, "2024-01-05", domain.FormatDate(got.StartDate))
	assert.Equal(t, "2024-01-09", domain.FormatDate(got.EndDate))
	assert.Equal(t, 4, got.DurationDays(), "duration preserved")
}

func TestController_DeltasMeasuredFromAnchor(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-02", "2024-01-06"))
	c := reg.For("a")
	require.True(t, c.Begin(ModeMove, 50, store.items["a"]))

	reg.Pointer().Move(80, tenPxPerDay, store.lookup) // +3
	reg.Pointer().Move(90, tenPxPerDay, store.lookup) // +4 from the anchor, not +4 from +3

	require.Len(t, store.calls, 2)
	assert.Equal(t, "2024-01-06", domain.FormatDate(store.items["a"].StartDate))

	reg.Pointer().Move(50, tenPxPerDay, store.lookup) // back to the anchor
	require.Len(t, store.calls, 3)
	assert.Equal(t, "2024-01-02", domain.FormatDate(store.items["a"].StartDate))
	assert.Equal(t, "2024-01-06", domain.FormatDate(store.items["a"].EndDate))
}

func TestController_NoUpdateWhenDatesUnchanged(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-02", "2024-01-06"))
	require.True(t, reg.For("a").Begin(ModeMove, 50, store.items["a"]))

	reg.Pointer().Move(52, tenPxPerDay, store.lookup) // rounds to 0 days
	reg.Pointer().Move(70, tenPxPerDay, store.lookup) // +2
	reg.Pointer().Move(71, tenPxPerDay, store.lookup) // still +2

	assert.Len(t, store.calls, 1)
}

func TestController_ResizeStartRejectsInversion(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"))
	require.True(t, reg.For("a").Begin(ModeResizeStart, 0, store.items["a"]))

	reg.Pointer().Move(40, tenPxPerDay, store.lookup) // start would equal end
	assert.Empty(t, store.calls)
	assert.Equal(t, "2024-01-01", domain.FormatDate(store.items["a"].StartDate))

	reg.Pointer().Move(30, tenPxPerDay, store.lookup) // one-day span is allowed
	require.Len(t, store.calls, 1)
	assert.Nil(t, store.calls[0].patch.EndDate)
	assert.Equal(t, "2024-01-04", domain.FormatDate(store.items["a"].StartDate))

	reg.Pointer().Move(60, tenPxPerDay, store.lookup) // past the end: held at last valid value
	assert.Len(t, store.calls, 1)
	assert.Equal(t, "2024-01-04", domain.FormatDate(store.items["a"].StartDate))
	assert.Equal(t, "2024-01-05", domain.FormatDate(store.items["a"].EndDate))
}

func TestController_ResizeEndRejectsInversion(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"))
	require.True(t, reg.For("a").Begin(ModeResizeEnd, 100, store.items["a"]))

	reg.Pointer().Move(60, tenPxPerDay, store.lookup) // end would equal start
	assert.Empty(t, store.calls)

	reg.Pointer().Move(70, tenPxPerDay, store.lookup)
	require.Len(t, store.calls, 1)
	assert.Nil(t, store.calls[0].patch.StartDate)
	assert.Equal(t, "2024-01-02", domain.FormatDate(store.items["a"].EndDate))

	reg.Pointer().Move(150, tenPxPerDay, store.lookup) // extend by 5 days from the anchor
	assert.Equal(t, "2024-01-10", domain.FormatDate(store.items["a"].EndDate))
}

func TestPointer_UpEndsGestureUnconditionally(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"))
	c := reg.For("a")
	require.True(t, c.Begin(ModeResizeStart, 0, store.items["a"]))
	reg.Pointer().Move(90, tenPxPerDay, store.lookup) // rejected

	reg.Pointer().Up()

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, Mode(""), c.Mode())
	_, active := reg.Pointer().Active()
	assert.False(t, active)

	// Listeners are gone: later moves do nothing.
	reg.Pointer().Move(30, tenPxPerDay, store.lookup)
	assert.Empty(t, store.calls)
}

func TestPointer_OneGestureAtATime(t *testing.T) {
	store, reg := setup(
		mkItem("a", "2024-01-01", "2024-01-05"),
		mkItem("b", "2024-01-03", "2024-01-07"),
	)
	a, b := reg.For("a"), reg.For("b")

	require.True(t, a.Begin(ModeMove, 0, store.items["a"]))
	assert.False(t, b.Begin(ModeMove, 0, store.items["b"]))
	assert.Equal(t, StateIdle, b.State())

	id, ok := reg.Pointer().Active()
	require.True(t, ok)
	assert.Equal(t, "a", id)

	reg.Pointer().Move(20, tenPxPerDay, store.lookup)
	require.Len(t, store.calls, 1)
	assert.Equal(t, "a", store.calls[0].id)

	reg.Pointer().Up()
	assert.True(t, b.Begin(ModeMove, 0, store.items["b"]))
}

func TestController_BeginGuards(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"), mkItem("b", "2024-01-01", "2024-01-05"))
	c := reg.For("a")

	assert.False(t, c.Begin(ModeMove, 0, store.items["b"]), "wrong item")
	require.True(t, c.Begin(ModeMove, 0, store.items["a"]))
	assert.False(t, c.Begin(ModeResizeEnd, 10, store.items["a"]), "already dragging")
	assert.Equal(t, ModeMove, c.Mode())
}

func TestController_MoveWhileIdleIsIgnored(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"))
	reg.For("a").Move(50, tenPxPerDay, store.items["a"])
	assert.Empty(t, store.calls)
}

func TestRegistry_PruneReleasesDraggingController(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"), mkItem("b", "2024-01-02", "2024-01-03"))
	a := reg.For("a")
	reg.For("b")
	require.True(t, a.Begin(ModeMove, 0, store.items["a"]))

	reg.Prune([]domain.Item{store.items["b"]})

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, StateIdle, a.State())
	_, active := reg.Pointer().Active()
	assert.False(t, active)
}

func TestRegistry_CloseTearsDownEverything(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"))
	require.True(t, reg.For("a").Begin(ModeMove, 0, store.items["a"]))

	reg.Close()

	assert.Equal(t, 0, reg.Len())
	_, active := reg.Pointer().Active()
	assert.False(t, active)
}

func TestPointer_MoveEndsGestureWhenItemVanished(t *testing.T) {
	store, reg := setup(mkItem("a", "2024-01-01", "2024-01-05"))
	c := reg.For("a")
	require.True(t, c.Begin(ModeMove, 0, store.items["a"]))
	delete(store.items, "a")

	reg.Pointer().Move(30, tenPxPerDay, store.lookup)

	assert.Empty(t, store.calls)
	assert.Equal(t, StateIdle, c.State())
}

func TestPropose(t *testing.T) {
	cur := mkItem("a", "2024-01-10", "2024-01-15")
	snap := SnapshotOf(cur)

	cases := []struct {
		name      string
		mode      Mode
		delta     int
		ok        bool
		wantStart string
		wantEnd   string
	}{
		{"move forward", ModeMove, 3, true, "2024-01-13", "2024-01-18"},
		{"move back", ModeMove, -10, true, "2023-12-31", "2024-01-05"},
		{"move zero", ModeMove, 0, false, "", ""},
		{"resize start earlier", ModeResizeStart, -2, true, "2024-01-08", ""},
		{"resize start to day before end", ModeResizeStart, 4, true, "2024-01-14", ""},
		{"resize start onto end", ModeResizeStart, 5, false, "", ""},
		{"resize start past end", ModeResizeStart, 9, false, "", ""},
		{"resize end later", ModeResizeEnd, 2, true, "", "2024-01-17"},
		{"resize end to day after start", ModeResizeEnd, -4, true, "", "2024-01-11"},
		{"resize end onto start", ModeResizeEnd, -5, false, "", ""},
		{"resize end zero", ModeResizeEnd, 0, false, "", ""},
		{"unknown mode", Mode("spin"), 1, false, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			patch, ok := Propose(tc.mode, snap, cur, tc.delta)
			require.Equal(t, tc.ok, ok)
			if !ok {
				assert.True(t, patch.IsEmpty())
				return
			}
			if tc.wantStart != "" {
				require.NotNil(t, patch.StartDate)
				assert.Equal(t, tc.wantStart, domain.FormatDate(*patch.StartDate))
			} else {
				assert.Nil(t, patch.StartDate)
			}
			if tc.wantEnd != "" {
				require.NotNil(t, patch.EndDate)
				assert.Equal(t, tc.wantEnd, domain.FormatDate(*patch.EndDate))
			} else {
				assert.Nil(t, patch.EndDate)
			}
		})
	}
}

func TestEditor_CommitTrimsAndEmits(t *testing.T) {
	store := newFakeStore(mkItem("a", "2024-01-01", "2024-01-05"))
	e := NewEditor(store.update)

	e.Begin(store.items["a"])
	assert.True(t, e.Editing())
	assert.Equal(t, "Item a", e.Draft())

	e.SetDraft("  Launch  ")
	require.True(t, e.Commit(store.items["a"]))

	require.Len(t, store.calls, 1)
	assert.Equal(t, "Launch", *store.calls[0].patch.Name)
	assert.Nil(t, store.calls[0].patch.StartDate)
	assert.False(t, e.Editing())
}

func TestEditor_RejectsEmptyAndUnchangedNames(t *testing.T) {
	store := newFakeStore(mkItem("a", "2024-01-01", "2024-01-05"))
	e := NewEditor(store.update)

	for _, draft := range []string{"", "   ", "Item a", " Item a\t"} {
		e.Begin(store.items["a"])
		e.SetDraft(draft)
		assert.False(t, e.Commit(store.items["a"]), "draft %q", draft)
		assert.False(t, e.Editing())
	}
	assert.Empty(t, store.calls)
}

func TestEditor_CancelDiscardsDraft(t *testing.T) {
	store := newFakeStore(mkItem("a", "2024-01-01", "2024-01-05"))
	e := NewEditor(store.update)

	e.Begin(store.items["a"])
	e.SetDraft("Something else")
	e.Cancel()

	assert.False(t, e.Editing())
	assert.Equal(t, "", e.Draft())
	assert.False(t, e.Commit(store.items["a"]), "commit after cancel does nothing")
	assert.Empty(t, store.calls)
}

func TestEditor_SetDraftIgnoredWhenIdle(t *testing.T) {
	e := NewEditor(func(string, domain.ItemPatch) { t.Fatal("unexpected update") })
	e.SetDraft("x")
	assert.Equal(t, "", e.Draft())
}

func TestEditor_CommitAgainstDifferentItemIsDropped(t *testing.T) {
	store := newFakeStore(mkItem("a", "2024-01-01", "2024-01-05"), mkItem("b", "2024-01-01", "2024-01-05"))
	e := NewEditor(store.update)

	e.Begin(store.items["a"])
	e.SetDraft("Renamed")
	assert.False(t, e.Commit(store.items["b"]))
	assert.Empty(t, store.calls)
}
