package cli

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/timeline/internal/cli/formatter"
	"github.com/alexanderramin/timeline/internal/db"
	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/interaction"
	"github.com/alexanderramin/timeline/internal/repository"
	"github.com/alexanderramin/timeline/internal/service"
	"github.com/alexanderramin/timeline/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileTestApp wires an App over a file-backed database, where every
// connection in the pool can write concurrently.
func fileTestApp(t *testing.T) *App {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "timeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	items := repository.NewSQLiteItemRepo(database)
	return &App{
		Items:  service.NewItemService(items, db.NewSQLiteUnitOfWork(database)),
		Layout: service.NewLayoutService(items),
	}
}

// loadedView builds a timeline view at the test size and loads it.
func loadedView(t *testing.T, app *App) *timelineView {
	t.Helper()
	v := newTimelineView(&SharedState{App: app, Width: testWidth, Height: testHeight})
	v.Update(v.Init()())
	require.True(t, v.loaded)
	return v
}

// runConcurrently executes cmds the way the bubbletea runtime does: each
// Cmd, and each member of a batch, on its own goroutine.
func runConcurrently(cmds ...tea.Cmd) []tea.Msg {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out []tea.Msg
	)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		defer wg.Done()
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				if sub != nil {
					wg.Add(1)
					go run(sub)
				}
			}
			return
		}
		if msg != nil {
			mu.Lock()
			out = append(out, msg)
			mu.Unlock()
		}
	}
	for _, c := range cmds {
		if c != nil {
			wg.Add(1)
			go run(c)
		}
	}
	wg.Wait()
	return out
}

// settle runs cmds concurrently and feeds the results back into v until
// no further commands are produced.
func settle(t *testing.T, v *timelineView, cmds []tea.Cmd) {
	t.Helper()
	for round := 0; len(cmds) > 0; round++ {
		require.Less(t, round, 50, "view never settled")
		var next []tea.Cmd
		for _, msg := range runConcurrently(cmds...) {
			_, cmd := v.Update(msg)
			if cmd != nil {
				next = append(next, cmd)
			}
		}
		cmds = next
	}
}

func send(v *timelineView, cmds *[]tea.Cmd, msg tea.Msg) {
	if _, cmd := v.Update(msg); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func assertStoreMatchesView(t *testing.T, app *App, v *timelineView, id string) {
	t.Helper()
	shown, ok := v.lookup(id)
	require.True(t, ok)
	stored, err := app.Items.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatDate(shown.StartDate), domain.FormatDate(stored.StartDate), "start")
	assert.Equal(t, domain.FormatDate(shown.EndDate), domain.FormatDate(stored.EndDate), "end")
	assert.Equal(t, shown.Name, stored.Name)
}

// Lane 1 sits on view row trackTop+1; the app header is not part of it.
const alphaViewRow = trackTop + 1

func TestTimelineView_DragPersistsFinalValue(t *testing.T) {
	for range 10 {
		app := fileTestApp(t)
		_, alpha := seedDragFixture(t, app)
		v := loadedView(t, app)

		var cmds []tea.Cmd
		send(v, &cmds, mouse(tea.MouseActionPress, 55, alphaViewRow))
		for x := 56; x <= 55+8*cellsPerDay; x++ {
			send(v, &cmds, mouse(tea.MouseActionMotion, x, alphaViewRow))
		}
		assert.Empty(t, cmds, "nothing is written mid-drag")
		assertDates(t, app, alpha.ID, "2024-01-10", "2024-01-14")

		send(v, &cmds, mouse(tea.MouseActionRelease, 55+8*cellsPerDay, alphaViewRow))
		settle(t, v, cmds)

		assertDates(t, app, alpha.ID, "2024-01-18", "2024-01-22")
		assertStoreMatchesView(t, app, v, alpha.ID)
	}
}

func TestTimelineView_RapidNudgesPersistInOrder(t *testing.T) {
	app := fileTestApp(t)
	_, alpha := seedDragFixture(t, app)
	v := loadedView(t, app)

	var cmds []tea.Cmd
	send(v, &cmds, runeKey('j'))
	for range 10 {
		send(v, &cmds, runeKey('l'))
	}
	send(v, &cmds, runeKey('>'))
	send(v, &cmds, runeKey('['))
	settle(t, v, cmds)

	assertDates(t, app, alpha.ID, "2024-01-19", "2024-01-25")
	assertStoreMatchesView(t, app, v, alpha.ID)
}

func TestTimelineView_ReloadKeepsUnsavedEdits(t *testing.T) {
	app := fileTestApp(t)
	_, alpha := seedDragFixture(t, app)
	v := loadedView(t, app)

	v.Update(runeKey('j'))
	_, save := v.Update(runeKey('l')) // in flight, not yet run
	require.NotNil(t, save)
	v.Update(runeKey('l')) // queued behind it

	v.Update(v.loadItems()())
	shown, _ := v.lookup(alpha.ID)
	assert.Equal(t, "2024-01-12", domain.FormatDate(shown.StartDate))

	settle(t, v, []tea.Cmd{save})
	assertDates(t, app, alpha.ID, "2024-01-12", "2024-01-16")
}

func TestTimelineView_FailedSaveReloadsFromStore(t *testing.T) {
	app := fileTestApp(t)
	_, alpha := seedDragFixture(t, app)
	v := loadedView(t, app)

	v.Update(runeKey('j'))
	_, save := v.Update(runeKey('l'))
	require.NoError(t, app.Items.Delete(context.Background(), alpha.ID))
	settle(t, v, []tea.Cmd{save})

	_, ok := v.lookup(alpha.ID)
	assert.False(t, ok)
	assert.Nil(t, v.saves.take())
}

func TestTimelineView_ZeroZoomMeansDefault(t *testing.T) {
	v := newTimelineView(&SharedState{App: &App{}, Width: testWidth})
	assert.Equal(t, 1.0, v.zoom)
}

// At a 20-cell track over a 40-day window each cell holds two days, so the
// one-day items A (Jan 1) and B (Jan 2) share cell 1. The cell's centre
// falls on Jan 2.
func TestTimelineView_HitTestPrefersBarCoveringCellDate(t *testing.T) {
	app := testApp(t)
	seedItem(t, app, "Long", testutil.WithDates("2024-01-01", "2024-02-06"))
	a := seedItem(t, app, "A", testutil.WithDates("2024-01-01", "2024-01-01"))
	b := seedItem(t, app, "B", testutil.WithDates("2024-01-02", "2024-01-02"))

	v := newTimelineView(&SharedState{App: app, Width: formatter.LaneGutter + 20})
	v.Update(v.Init()())
	require.Equal(t, 40, v.layout.Window.TotalDays)

	lane := -1
	for _, p := range v.layout.Placed {
		if p.ID == a.ID {
			lane = p.Lane
		}
	}
	require.NotEqual(t, -1, lane)

	p, mode, ok := v.hitTest(formatter.LaneGutter+1, trackTop+lane)
	require.True(t, ok)
	assert.Equal(t, b.ID, p.ID)
	assert.Equal(t, interaction.ModeMove, mode)
}
