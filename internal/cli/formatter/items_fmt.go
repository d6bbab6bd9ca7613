package formatter

import (
	"strconv"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/timeline"
)

// FormatItemList renders items in stored order with the lane each one was
// packed into.
func FormatItemList(items []domain.Item, layout timeline.Layout) string {
	if len(items) == 0 {
		return Dim("No items. Add one with 'timeline item add' or 'timeline import'.") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		lane := ""
		if p, ok := layout.Find(it.ID); ok {
			lane = BarStyle(it.Color, p.Lane).Render(LaneLabel(p.Lane))
		}
		rows = append(rows, []string{
			Dim(it.ID),
			it.Name,
			domain.FormatDate(it.StartDate),
			domain.FormatDate(it.EndDate),
			strconv.Itoa(it.DurationDays() + 1),
			lane,
		})
	}
	return RenderTable([]string{"ID", "NAME", "START", "END", "DAYS", "LANE"}, rows, 4)
}

// FormatItem renders a single item on one line.
func FormatItem(it domain.Item) string {
	return Bold(it.Name) + " " + Dim("("+it.ID+")") + "  " +
		domain.FormatDate(it.StartDate) + " → " + domain.FormatDate(it.EndDate)
}
