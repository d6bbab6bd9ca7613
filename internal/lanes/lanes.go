// Package lanes packs timeline items into the fewest rows such that no two
// items sharing a row overlap.
package lanes

import (
	"sort"
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
)

// Assign tags every item with a lane using greedy interval colouring.
//
// Items are visited by start date, then end date (a stable sort, so fully
// tied items keep their input order). Each item takes the lowest lane whose
// current occupant ended strictly before the item starts, or opens a new
// lane. The result is ordered by that visiting order, not by input order,
// and holds exactly one entry per input item.
func Assign(items []domain.Item) []domain.LaneAssignment {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.EndDate.Before(b.EndDate)
	})

	// laneEnds[i] is the end date of the item currently occupying lane i.
	var laneEnds []time.Time
	result := make([]domain.LaneAssignment, 0, len(sorted))

	for _, item := range sorted {
		lane := -1
		for i, end := range laneEnds {
			if end.Before(item.StartDate) {
				lane = i
				laneEnds[i] = item.EndDate
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, item.EndDate)
		}
		result = append(result, domain.LaneAssignment{Item: item, Lane: lane})
	}

	return result
}

// Count returns the number of lanes used by a set of assignments.
func Count(assignments []domain.LaneAssignment) int {
	n := 0
	for _, a := range assignments {
		if a.Lane+1 > n {
			n = a.Lane + 1
		}
	}
	return n
}

// ByLane groups assignments into rows, index = lane. Within a row items keep
// the order Assign produced, which is chronological.
func ByLane(assignments []domain.LaneAssignment) [][]domain.LaneAssignment {
	rows := make([][]domain.LaneAssignment, Count(assignments))
	for _, a := range assignments {
		rows[a.Lane] = append(rows[a.Lane], a)
	}
	return rows
}
