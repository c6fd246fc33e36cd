// Package layout turns one day's sessions (plus derived warm-up/travel
// pre-blocks) into a non-overlapping column geometry inside an auto-fitted
// time window. It produces a logical model only; rendering is the caller's
// concern.
package layout

import (
	"sort"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// BlockKind tags a layout item with what it represents.
type BlockKind string

const (
	KindSession BlockKind = "session"
	KindWarmup  BlockKind = "warmup"
	KindTravel  BlockKind = "travel"
)

// Item is a single block on the day grid. Column/Columns are filled by
// Assign: the item's lane index and the lane count of its overlap cluster.
type Item struct {
	SessionID string
	Kind      BlockKind
	StartMin  int
	EndMin    int
	Column    int
	Columns   int
}

// ItemsForDay unpacks the given date's sessions into layout items,
// synthesizing warm-up/travel pre-blocks for away games. Pre-blocks are
// derived every time; they are never persisted. Travel precedes warm-up,
// both immediately before the session start.
func ItemsForDay(sessions []domain.Session, date string) []Item {
	var items []Item
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		items = append(items, Item{
			SessionID: s.ID,
			Kind:      KindSession,
			StartMin:  s.StartMin,
			EndMin:    s.EndMin(),
		})
		if !s.IsAwayGame() {
			continue
		}
		if s.WarmupMin > 0 {
			items = append(items, Item{
				SessionID: s.ID,
				Kind:      KindWarmup,
				StartMin:  s.StartMin - s.WarmupMin,
				EndMin:    s.StartMin,
			})
		}
		if s.TravelMin > 0 {
			items = append(items, Item{
				SessionID: s.ID,
				Kind:      KindTravel,
				StartMin:  s.StartMin - s.WarmupMin - s.TravelMin,
				EndMin:    s.StartMin - s.WarmupMin,
			})
		}
	}
	return items
}

// Assign clips items to the window, drops degenerate results, and computes
// the greedy column geometry. Items are sorted by start (ties by end) and
// swept left to right; each item takes the first lane whose end is at or
// before its start, or opens a new lane. Lane counts are normalized per
// overlap cluster so unrelated time-of-day groups keep independent widths.
func Assign(items []Item, w Window) []Item {
	clipped := make([]Item, 0, len(items))
	for _, it := range items {
		if it.StartMin < w.StartMin {
			it.StartMin = w.StartMin
		}
		if it.EndMin > w.EndMin {
			it.EndMin = w.EndMin
		}
		if it.EndMin <= it.StartMin {
			continue
		}
		clipped = append(clipped, it)
	}

	sort.SliceStable(clipped, func(i, j int) bool {
		if clipped[i].StartMin != clipped[j].StartMin {
			return clipped[i].StartMin < clipped[j].StartMin
		}
		return clipped[i].EndMin < clipped[j].EndMin
	})

	var (
		laneEnds     []int // end minute of the last item in each lane
		clusterStart int   // index of the first item in the running cluster
		clusterEnd   int   // max end minute seen in the running cluster
	)

	finishCluster := func(upTo int) {
		for i := clusterStart; i < upTo; i++ {
			clipped[i].Columns = len(laneEnds)
		}
		laneEnds = laneEnds[:0]
		clusterStart = upTo
	}

	for i := range clipped {
		it := &clipped[i]

		// A gap to everything seen so far starts a new cluster.
		if i > clusterStart && it.StartMin >= clusterEnd {
			finishCluster(i)
		}

		lane := -1
		for l, end := range laneEnds {
			if end <= it.StartMin {
				lane = l
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = it.EndMin
		it.Column = lane

		if i == clusterStart || it.EndMin > clusterEnd {
			clusterEnd = it.EndMin
		}
	}
	finishCluster(len(clipped))

	return clipped
}

// Day computes the full layout for one date: items (with pre-blocks),
// the display window, and column assignment.
func Day(sessions []domain.Session, date string, opts Options) (Window, []Item) {
	items := ItemsForDay(sessions, date)
	w := opts.window(items)
	return w, Assign(items, w)
}
