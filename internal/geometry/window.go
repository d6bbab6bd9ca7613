// Package geometry maps calendar dates onto a horizontal track.
//
// A Window is the date span currently on screen. Positions are expressed as
// a percentage of the track (0 = window start, 100 = window end) and are
// never clamped: anything outside [0, 100] is simply off screen.
package geometry

import (
	"math"
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
)

// paddingRatio is the share of the item span added on each side of the
// window so items do not touch the track edges.
const paddingRatio = 0.05

// Window is the visible date span. TotalDays is at least 1.
type Window struct {
	Start     time.Time
	End       time.Time
	TotalDays int
}

// DateRange returns the earliest start and the latest end across items.
// With no items both values are today, there being no better default.
func DateRange(items []domain.Item) (min, max time.Time) {
	return dateRangeFrom(items, domain.Today())
}

func dateRangeFrom(items []domain.Item, now time.Time) (min, max time.Time) {
	if len(items) == 0 {
		return now, now
	}
	min, max = items[0].StartDate, items[0].EndDate
	for _, it := range items[1:] {
		if it.StartDate.Before(min) {
			min = it.StartDate
		}
		if it.EndDate.After(max) {
			max = it.EndDate
		}
	}
	return min, max
}

// ComputeWindow derives the visible window from the item set and a zoom
// factor. The item range is padded by 5% of its length (rounded up to whole
// days) on both sides; the zoom then scales the padded span around its
// midpoint, narrowing it for z > 1 and widening it for z < 1.
func ComputeWindow(items []domain.Item, zoom float64) Window {
	min, max := DateRange(items)
	return windowFor(min, max, zoom)
}

func windowFor(min, max time.Time, zoom float64) Window {
	zoom = ClampZoom(zoom)

	padding := int(math.Ceil(days(max.Sub(min)) * paddingRatio))
	paddedStart := domain.AddDays(min, -padding)
	paddedEnd := domain.AddDays(max, padding)

	span := paddedEnd.Sub(paddedStart)
	center := paddedStart.Add(span / 2)
	half := time.Duration(float64(span) / zoom / 2)

	start := center.Add(-half)
	end := center.Add(half)

	total := int(math.Ceil(days(end.Sub(start))))
	if total < 1 {
		total = 1
	}

	return Window{Start: start, End: end, TotalDays: total}
}

// Span returns the exact length of the window in fractional days.
func (w Window) Span() float64 {
	return days(w.End.Sub(w.Start))
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func days(d time.Duration) float64 {
	return float64(d) / float64(domain.Day)
}
