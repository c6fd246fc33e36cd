package layout

// Window is the visible time range of a day column, in minutes since
// midnight. EndMin is exclusive.
type Window struct {
	StartMin int
	EndMin   int
}

const (
	windowPaddingMin = 30
	windowMinSpanMin = 3 * 60

	// FullDayWindow bounds used when a day has no items to fit to.
	fullDayStartMin = 0
	fullDayEndMin   = 24 * 60

	// DefaultGranularityMin is the snap granularity for auto windows.
	DefaultGranularityMin = 30
)

// Options controls how the display window is chosen. The zero value means
// an automatic window snapped to the default granularity.
type Options struct {
	// Manual, when non-nil, is used verbatim instead of auto-fitting.
	Manual *Window
	// GranularityMin is the snap step for auto windows; 0 means the
	// default of 30 minutes.
	GranularityMin int
}

func (o Options) window(items []Item) Window {
	if o.Manual != nil {
		return *o.Manual
	}
	g := o.GranularityMin
	if g <= 0 {
		g = DefaultGranularityMin
	}
	return AutoWindow(items, g)
}

// AutoWindow fits a window around the given items: earliest start to
// latest end, padded by 30 minutes each side, snapped outward to the
// granularity, widened to at least three hours by recentering around the
// midpoint. With no items it falls back to the full day.
func AutoWindow(items []Item, granularityMin int) Window {
	if len(items) == 0 {
		return Window{StartMin: fullDayStartMin, EndMin: fullDayEndMin}
	}

	start := items[0].StartMin
	end := items[0].EndMin
	for _, it := range items[1:] {
		if it.StartMin < start {
			start = it.StartMin
		}
		if it.EndMin > end {
			end = it.EndMin
		}
	}

	start -= windowPaddingMin
	end += windowPaddingMin

	start = snapDown(start, granularityMin)
	end = snapUp(end, granularityMin)

	if end-start < windowMinSpanMin {
		mid := (start + end) / 2
		start = snapDown(mid-windowMinSpanMin/2, granularityMin)
		end = start + windowMinSpanMin
	}

	// A window pushed past a day edge slides back inside; clamping must
	// not shrink it below the minimum span.
	if start < fullDayStartMin {
		end += fullDayStartMin - start
		start = fullDayStartMin
	}
	if end > fullDayEndMin {
		start -= end - fullDayEndMin
		end = fullDayEndMin
		if start < fullDayStartMin {
			start = fullDayStartMin
		}
	}
	return Window{StartMin: start, EndMin: end}
}

// WeekWindow fits one shared window across several days' item lists so
// the seven columns of a week view share a row axis.
func WeekWindow(days [][]Item, granularityMin int) Window {
	var all []Item
	for _, items := range days {
		all = append(all, items...)
	}
	return AutoWindow(all, granularityMin)
}

func snapDown(v, step int) int {
	if step <= 0 {
		return v
	}
	if v < 0 {
		// Round away from zero so padding is never lost to truncation.
		return -snapUp(-v, step)
	}
	return v / step * step
}

func snapUp(v, step int) int {
	if step <= 0 {
		return v
	}
	if v < 0 {
		return -snapDown(-v, step)
	}
	if v%step == 0 {
		return v
	}
	return (v/step + 1) * step
}
