package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timeline/internal/cli/formatter"
	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/geometry"
	"github.com/alexanderramin/timeline/internal/interaction"
	"github.com/alexanderramin/timeline/internal/timeline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// Rows above the first lane: the summary line and the month ruler.
	trackTop      = 2
	minTrackWidth = 20
)

type itemsLoadedMsg struct {
	items []domain.Item
	err   error
}

type itemsSavedMsg struct {
	err error
}

// timelineView shows the lane chart and turns mouse drags, key nudges and
// inline renames into item updates. Updates are merged into items at once.
// They reach the store through one saveQueue, and a drag is written only
// once the pointer is released.
type timelineView struct {
	state *SharedState

	items    []domain.Item
	layout   timeline.Layout
	zoom     float64
	selected string
	loaded   bool
	err      error

	pointer  *interaction.Pointer
	registry *interaction.Registry
	editor   *interaction.Editor
	input    textinput.Model

	saves *saveQueue
}

func newTimelineView(state *SharedState) *timelineView {
	zoom := state.App.Zoom
	if zoom == 0 {
		zoom = geometry.DefaultZoom
	}
	v := &timelineView{
		state:   state,
		zoom:    geometry.ClampZoom(zoom),
		pointer: interaction.NewPointer(),
		saves:   newSaveQueue(),
	}
	v.registry = interaction.NewRegistry(v.pointer, v.applyUpdate)
	v.editor = interaction.NewEditor(v.applyUpdate)

	v.input = textinput.New()
	v.input.Prompt = "rename: "
	v.input.CharLimit = 200
	v.rebuild()
	return v
}

func (v *timelineView) Init() tea.Cmd {
	return v.loadItems()
}

func (v *timelineView) loadItems() tea.Cmd {
	items := v.state.App.Items
	return func() tea.Msg {
		list, err := items.List(context.Background())
		return itemsLoadedMsg{items: list, err: err}
	}
}

// flushSaves writes the next batch of queued patches, in order, from a
// single Cmd. Nothing is written while a drag is in progress.
func (v *timelineView) flushSaves() tea.Cmd {
	if _, dragging := v.pointer.Active(); dragging {
		return nil
	}
	batch := v.saves.take()
	if batch == nil {
		return nil
	}
	items := v.state.App.Items
	return func() tea.Msg {
		for _, p := range batch {
			if _, err := items.Update(context.Background(), p.id, p.patch); err != nil {
				return itemsSavedMsg{err: err}
			}
		}
		return itemsSavedMsg{}
	}
}

// applyUpdate is the UpdateFunc handed to controllers and the editor.
func (v *timelineView) applyUpdate(id string, patch domain.ItemPatch) {
	for i := range v.items {
		if v.items[i].ID == id {
			v.items[i] = patch.Apply(v.items[i])
			v.rebuild()
			v.saves.add(id, patch)
			return
		}
	}
}

func (v *timelineView) lookup(id string) (domain.Item, bool) {
	for _, it := range v.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}

// rebuild recomputes the layout and drops controllers for vanished items.
func (v *timelineView) rebuild() {
	v.layout = timeline.Build(v.items, v.zoom)
	v.registry.Prune(v.items)
	if _, ok := v.lookup(v.selected); !ok {
		v.selected = ""
		if len(v.layout.Placed) > 0 {
			v.selected = v.layout.Placed[0].ID
		}
	}
}

func (v *timelineView) trackWidth() int {
	return max(v.state.Width-formatter.LaneGutter, minTrackWidth)
}

func (v *timelineView) frame() interaction.Frame {
	return interaction.Frame{Window: v.layout.Window, ContainerWidth: float64(v.trackWidth())}
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := v.update(msg)
	if save := v.flushSaves(); save != nil {
		cmd = tea.Batch(cmd, save)
	}
	return v, cmd
}

func (v *timelineView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		v.loaded = true
		v.err = msg.err
		if msg.err == nil {
			v.items = v.saves.overlay(msg.items)
			v.rebuild()
		}
		return nil

	case itemsSavedMsg:
		if msg.err != nil {
			v.saves.reset()
			return tea.Batch(setStatus("save failed: "+msg.err.Error()), v.loadItems())
		}
		v.saves.done()
		return nil

	case refreshViewMsg:
		return v.loadItems()

	case tea.MouseMsg:
		v.handleMouse(msg)
		return nil

	case tea.KeyMsg:
		if v.editor.Editing() {
			return v.handleEditKey(msg)
		}
		return v.handleKey(msg)
	}

	if v.editor.Editing() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}
	return nil
}

// ── pointer ──────────────────────────────────────────────────────────────────

func (v *timelineView) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X - formatter.LaneGutter)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || v.editor.Editing() {
			return
		}
		p, mode, ok := v.hitTest(msg.X, msg.Y)
		if !ok {
			return
		}
		v.selected = p.ID
		item, _ := v.lookup(p.ID)
		v.registry.For(p.ID).Begin(mode, x, item)

	case tea.MouseActionMotion:
		v.pointer.Move(x, v.frame(), v.lookup)

	case tea.MouseActionRelease:
		v.pointer.Up()
	}
}

// hitTest finds the bar under cell (x, y) of the view. The first and last
// cell of a bar wider than one cell grab its edges.
//
// When zoomed out several short bars can share a cell. The bar whose days
// contain the date at the cell's centre wins; failing that, the one drawn
// last, which is the one on screen.
func (v *timelineView) hitTest(x, y int) (timeline.Placed, interaction.Mode, bool) {
	lane := y - trackTop
	rows := v.layout.Rows()
	if lane < 0 || lane >= len(rows) {
		return timeline.Placed{}, "", false
	}
	col := x - formatter.LaneGutter
	width := v.trackWidth()
	at := v.cellDate(col, width)

	var (
		hit          timeline.Placed
		first, last  int
		found, dated bool
	)
	for _, p := range rows[lane] {
		f, l, visible := formatter.BarSpan(p, width)
		if !visible || col < f || col > l {
			continue
		}
		covers := !at.Before(p.StartDate) && at.Before(domain.AddDays(p.EndDate, 1))
		if dated && !covers {
			continue
		}
		hit, first, last, found, dated = p, f, l, true, dated || covers
	}
	if !found {
		return timeline.Placed{}, "", false
	}

	switch {
	case last > first && col == first:
		return hit, interaction.ModeResizeStart, true
	case last > first && col == last:
		return hit, interaction.ModeResizeEnd, true
	default:
		return hit, interaction.ModeMove, true
	}
}

// cellDate is the instant at the horizontal centre of track cell col.
func (v *timelineView) cellDate(col, width int) time.Time {
	w := v.layout.Window
	days := (float64(col) + 0.5) / float64(width) * float64(w.TotalDays)
	return w.Start.Add(time.Duration(days * float64(domain.Day)))
}

// ── keyboard ─────────────────────────────────────────────────────────────────

func (v *timelineView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "left", "k":
		v.selectStep(-1)
	case "down", "right", "j":
		v.selectStep(1)
	case "h":
		return v.nudge(interaction.ModeMove, -1)
	case "l":
		return v.nudge(interaction.ModeMove, 1)
	case "<":
		return v.nudge(interaction.ModeResizeEnd, -1)
	case ">":
		return v.nudge(interaction.ModeResizeEnd, 1)
	case "[":
		return v.nudge(interaction.ModeResizeStart, -1)
	case "]":
		return v.nudge(interaction.ModeResizeStart, 1)
	case "+", "=":
		v.setZoom(geometry.ZoomIn(v.zoom))
	case "-":
		v.setZoom(geometry.ZoomOut(v.zoom))
	case "0":
		v.setZoom(geometry.DefaultZoom)
	case "e":
		item, ok := v.lookup(v.selected)
		if !ok {
			return nil
		}
		v.editor.Begin(item)
		v.input.SetValue(item.Name)
		v.input.CursorEnd()
		return v.input.Focus()
	case "a":
		return startAddItemWizard(v.state)
	case "r":
		return v.loadItems()
	}
	return nil
}

func (v *timelineView) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		v.editor.SetDraft(v.input.Value())
		current, _ := v.lookup(v.editor.ItemID())
		v.input.Blur()
		if !v.editor.Commit(current) {
			return setStatus("no change")
		}
		return nil
	case tea.KeyEsc:
		v.editor.Cancel()
		v.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

// selectStep moves the selection through items in start-date order.
func (v *timelineView) selectStep(step int) {
	n := len(v.layout.Placed)
	if n == 0 {
		return
	}
	idx := 0
	for i, p := range v.layout.Placed {
		if p.ID == v.selected {
			idx = i
			break
		}
	}
	idx = (idx + step + n) % n
	v.selected = v.layout.Placed[idx].ID
}

// nudge applies a one-day keyboard gesture with the same rules as a drag.
func (v *timelineView) nudge(mode interaction.Mode, days int) tea.Cmd {
	item, ok := v.lookup(v.selected)
	if !ok {
		return nil
	}
	patch, ok := interaction.Propose(mode, interaction.SnapshotOf(item), item, days)
	if !ok {
		return setStatus("no change")
	}
	v.applyUpdate(item.ID, patch)
	return nil
}

func (v *timelineView) setZoom(z float64) {
	v.zoom = geometry.ClampZoom(z)
	v.rebuild()
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *timelineView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}
	if !v.loaded {
		return formatter.Dim("Loading…")
	}

	w := v.layout.Window
	width := v.trackWidth()
	lines := []string{
		formatter.Dim(fmt.Sprintf("zoom %d%% · %s → %s · %d days · %d items in %d lanes",
			geometry.ZoomPercent(v.zoom),
			domain.FormatDate(w.Start), domain.FormatDate(w.End), w.TotalDays,
			len(v.items), v.layout.LaneCount)),
		strings.Repeat(" ", formatter.LaneGutter) + formatter.RenderRuler(v.layout.Markers, width),
	}
	for lane, row := range v.layout.Rows() {
		lines = append(lines, formatter.Dim(formatter.LaneLabel(lane))+formatter.RenderTrack(row, width, v.selected))
	}
	lines = append(lines, "")

	switch {
	case len(v.items) == 0:
		lines = append(lines, formatter.Dim("No items. Press a to add one."))
	case v.editor.Editing():
		lines = append(lines, v.input.View())
	default:
		if item, ok := v.lookup(v.selected); ok {
			lines = append(lines, formatter.FormatItem(item))
		}
	}

	return strings.Join(lines, "\n")
}

func (v *timelineView) ID() ViewID          { return ViewTimeline }
func (v *timelineView) Title() string       { return "Timeline" }
func (v *timelineView) CapturesInput() bool { return v.editor.Editing() }

func (v *timelineView) ShortHelp() []key.Binding {
	if v.editor.Editing() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "move")),
		key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "start")),
		key.NewBinding(key.WithKeys("<", ">"), key.WithHelp("</>", "end")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "zoom")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	}
}
