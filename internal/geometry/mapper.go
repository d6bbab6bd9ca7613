package geometry

import (
	"math"
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
)

// Position returns where date falls on the track as a percentage of the
// window. The result is unclamped.
func Position(w Window, date time.Time) float64 {
	return days(date.Sub(w.Start)) / float64(w.TotalDays) * 100
}

// DeltaDays converts a horizontal pointer movement into whole days.
// Half-way values round toward positive infinity. A non-positive container
// width is treated as 1 pixel.
func DeltaDays(w Window, deltaPixels, containerWidth float64) int {
	if containerWidth <= 0 {
		containerWidth = 1
	}
	return int(math.Floor(deltaPixels/containerWidth*float64(w.TotalDays) + 0.5))
}

// Bar returns the left edge and width, both in percent of the window, of
// the bar drawn for item. The left edge snaps to the day the item starts;
// the width covers every day of the item inclusively and is never less than
// one day.
func Bar(w Window, item domain.Item) (left, width float64) {
	fromStart := math.Floor(days(item.StartDate.Sub(w.Start)))
	duration := math.Max(1, math.Ceil(days(item.EndDate.Sub(item.StartDate)))+1)

	total := float64(w.TotalDays)
	return fromStart / total * 100, duration / total * 100
}

// Marker is a labelled tick on the time axis.
type Marker struct {
	Date     time.Time
	Label    string
	Position float64
}

// MonthMarkers returns a marker for the first day of every month that falls
// on screen, in chronological order.
func MonthMarkers(w Window) []Marker {
	var markers []Marker

	y, m, _ := w.Start.UTC().Date()
	current := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	for !current.After(w.End) {
		pos := Position(w, current)
		if pos >= 0 && pos <= 100 {
			markers = append(markers, Marker{
				Date:     current,
				Label:    current.Format("Jan 2006"),
				Position: pos,
			})
		}
		current = current.AddDate(0, 1, 0)
	}

	return markers
}

// columnEpsilon absorbs the error of the day -> percent -> cell round trip,
// so a day boundary that lands exactly on a cell is not floored into the
// previous one.
const columnEpsilon = 1e-9

// ToColumn maps a percentage position onto a track of the given width in
// cells, rounding down.
func ToColumn(percent float64, trackWidth int) int {
	return int(math.Floor(percent/100*float64(trackWidth) + columnEpsilon))
}
