package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/geometry"
	"github.com/alexanderramin/timeline/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// LaneGutter is the width of the "L0  " label in front of every track.
const LaneGutter = 4

var styleSelected = lipgloss.NewStyle().Reverse(true).Bold(true)

// BarSpan returns the first and last cell of p's bar on a track of width
// cells. The span is not clipped; visible reports whether any of it is on
// the track.
func BarSpan(p timeline.Placed, width int) (first, last int, visible bool) {
	first = geometry.ToColumn(p.Left, width)
	last = geometry.ToColumn(p.Left+p.Width, width) - 1
	if last < first {
		last = first
	}
	return first, last, last >= 0 && first < width
}

// RenderRuler draws a tick and label for each month marker.
func RenderRuler(markers []geometry.Marker, width int) string {
	cells := blankCells(width)
	for i, m := range markers {
		col := geometry.ToColumn(m.Position, width)
		if col < 0 || col >= width {
			continue
		}
		limit := width
		if i+1 < len(markers) {
			limit = min(limit, geometry.ToColumn(markers[i+1].Position, width)-1)
		}
		cells[col] = '|'
		for j, r := range []rune(m.Label) {
			if col+1+j >= limit {
				break
			}
			cells[col+1+j] = r
		}
	}
	return StyleDim.Render(trimCells(cells))
}

// RenderTrack draws one lane of bars. The bar of selectedID is highlighted.
func RenderTrack(row []timeline.Placed, width int, selectedID string) string {
	cells := blankCells(width)
	owner := make([]int, width)
	for i := range owner {
		owner[i] = -1
	}

	for idx, p := range row {
		first, last, visible := BarSpan(p, width)
		if !visible {
			continue
		}
		glyphs := barGlyphs(p.Name, last-first+1)
		for c := first; c <= last; c++ {
			if c < 0 || c >= width {
				continue
			}
			cells[c] = glyphs[c-first]
			owner[c] = idx
		}
	}

	end := len(trimCells(cells))
	var b strings.Builder
	for start := 0; start < end; {
		stop := start
		for stop < end && owner[stop] == owner[start] {
			stop++
		}
		segment := string(cells[start:stop])
		if o := owner[start]; o >= 0 {
			p := row[o]
			style := BarStyle(p.Color, p.Lane)
			if p.ID == selectedID {
				style = styleSelected.Foreground(style.GetForeground())
			}
			segment = style.Render(segment)
		}
		b.WriteString(segment)
		start = stop
	}
	return b.String()
}

// barGlyphs renders a bar of n cells as "[Name===]", or "#" for one cell.
func barGlyphs(name string, n int) []rune {
	if n == 1 {
		return []rune{'#'}
	}
	out := make([]rune, n)
	out[0], out[n-1] = '[', ']'
	label := []rune(name)
	for i := 1; i < n-1; i++ {
		if i-1 < len(label) {
			out[i] = label[i-1]
		} else {
			out[i] = '='
		}
	}
	return out
}

func blankCells(width int) []rune {
	if width < 0 {
		width = 0
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}
	return cells
}

func trimCells(cells []rune) string {
	return strings.TrimRight(string(cells), " ")
}

// LaneLabel is the gutter label for lane n.
func LaneLabel(n int) string {
	return fmt.Sprintf("L%-3d", n)
}

// FormatLanes renders a layout as a plain lane chart over a track of width
// cells, preceded by a summary of the window.
func FormatLanes(layout timeline.Layout, width int) string {
	var b strings.Builder
	b.WriteString(Header("Lanes"))
	b.WriteString("\n")

	w := layout.Window
	fmt.Fprintf(&b, "%d items · %d lanes · %s → %s · %d days · zoom %d%%\n",
		len(layout.Placed), layout.LaneCount,
		domain.FormatDate(w.Start), domain.FormatDate(w.End), w.TotalDays,
		geometry.ZoomPercent(layout.Zoom))

	if len(layout.Placed) == 0 {
		b.WriteString("\n" + Dim("No items.") + "\n")
		return b.String()
	}

	b.WriteString("\n")
	gutter := strings.Repeat(" ", LaneGutter)
	b.WriteString(strings.TrimRight(gutter+RenderRuler(layout.Markers, width), " "))
	b.WriteString("\n")
	for lane, row := range layout.Rows() {
		b.WriteString(Dim(LaneLabel(lane)) + RenderTrack(row, width, ""))
		b.WriteString("\n")
	}
	return b.String()
}
