package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

func fullDay() Window {
	return Window{StartMin: 0, EndMin: 24 * 60}
}

func TestItemsForDay_SynthesizesPreBlocksForAwayGames(t *testing.T) {
	sessions := []domain.Session{
		{ID: "game", Date: "2026-02-28", StartMin: 15 * 60, DurationMin: 120,
			Info: "@ TSV Rivalen", WarmupMin: 30, TravelMin: 60},
	}

	items := ItemsForDay(sessions, "2026-02-28")
	require.Len(t, items, 3)

	byKind := make(map[BlockKind]Item)
	for _, it := range items {
		byKind[it.Kind] = it
	}

	assert.Equal(t, 15*60, byKind[KindSession].StartMin)
	assert.Equal(t, 17*60, byKind[KindSession].EndMin)
	// Warm-up sits immediately before the game.
	assert.Equal(t, 14*60+30, byKind[KindWarmup].StartMin)
	assert.Equal(t, 15*60, byKind[KindWarmup].EndMin)
	// Travel precedes the warm-up.
	assert.Equal(t, 13*60+30, byKind[KindTravel].StartMin)
	assert.Equal(t, 14*60+30, byKind[KindTravel].EndMin)
}

func TestItemsForDay_NoPreBlocksForHomeGamesOrTrainings(t *testing.T) {
	sessions := []domain.Session{
		{ID: "home", Date: "2026-02-28", StartMin: 15 * 60, DurationMin: 120,
			Info: "vs TSV Rivalen", WarmupMin: 30, TravelMin: 60},
		{ID: "training", Date: "2026-02-28", StartMin: 18 * 60, DurationMin: 90,
			WarmupMin: 30},
	}

	items := ItemsForDay(sessions, "2026-02-28")
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, KindSession, it.Kind)
	}
}

func TestItemsForDay_ZeroMinutePreBlocksOmitted(t *testing.T) {
	sessions := []domain.Session{
		{ID: "game", Date: "2026-02-28", StartMin: 15 * 60, DurationMin: 120,
			Info: "@ TSV Rivalen", WarmupMin: 0, TravelMin: 45},
	}

	items := ItemsForDay(sessions, "2026-02-28")
	require.Len(t, items, 2)
	assert.Equal(t, KindTravel, items[1].Kind)
	assert.Equal(t, 14*60+15, items[1].StartMin)
	assert.Equal(t, 15*60, items[1].EndMin)
}

func TestAssign_NonOverlappingShareOneColumn(t *testing.T) {
	items := []Item{
		{SessionID: "a", StartMin: 9 * 60, EndMin: 10 * 60},
		{SessionID: "b", StartMin: 18 * 60, EndMin: 19 * 60},
	}

	assigned := Assign(items, fullDay())
	require.Len(t, assigned, 2)
	for _, it := range assigned {
		assert.Equal(t, 0, it.Column)
		assert.Equal(t, 1, it.Columns)
	}
}

func TestAssign_OverlappingItemsGetDistinctColumns(t *testing.T) {
	items := []Item{
		{SessionID: "a", StartMin: 18 * 60, EndMin: 19*60 + 30},
		{SessionID: "b", StartMin: 18*60 + 30, EndMin: 19*60 + 30},
	}

	assigned := Assign(items, fullDay())
	require.Len(t, assigned, 2)
	assert.NotEqual(t, assigned[0].Column, assigned[1].Column)
	assert.Equal(t, 2, assigned[0].Columns)
	assert.Equal(t, 2, assigned[1].Columns)
}

func TestAssign_ColumnReusedAfterGap(t *testing.T) {
	// a and b overlap; c starts after a ends and reuses its lane.
	items := []Item{
		{SessionID: "a", StartMin: 18 * 60, EndMin: 19 * 60},
		{SessionID: "b", StartMin: 18*60 + 30, EndMin: 20 * 60},
		{SessionID: "c", StartMin: 19 * 60, EndMin: 19*60 + 45},
	}

	assigned := Assign(items, fullDay())
	require.Len(t, assigned, 3)

	byID := make(map[string]Item)
	for _, it := range assigned {
		byID[it.SessionID] = it
	}

	assert.Equal(t, 0, byID["a"].Column)
	assert.Equal(t, 1, byID["b"].Column)
	assert.Equal(t, 0, byID["c"].Column)
	// All three belong to one chained cluster and share its width.
	assert.Equal(t, 2, byID["a"].Columns)
	assert.Equal(t, 2, byID["b"].Columns)
	assert.Equal(t, 2, byID["c"].Columns)
}

func TestAssign_IndependentClustersKeepOwnWidths(t *testing.T) {
	items := []Item{
		{SessionID: "a", StartMin: 9 * 60, EndMin: 10 * 60},
		{SessionID: "b", StartMin: 9*60 + 30, EndMin: 10*60 + 30},
		{SessionID: "c", StartMin: 18 * 60, EndMin: 19 * 60},
	}

	assigned := Assign(items, fullDay())
	byID := make(map[string]Item)
	for _, it := range assigned {
		byID[it.SessionID] = it
	}

	assert.Equal(t, 2, byID["a"].Columns)
	assert.Equal(t, 2, byID["b"].Columns)
	assert.Equal(t, 1, byID["c"].Columns)
	assert.Equal(t, 0, byID["c"].Column)
}

func TestAssign_NoOverlapWithinColumn(t *testing.T) {
	items := []Item{
		{SessionID: "a", StartMin: 18 * 60, EndMin: 20 * 60},
		{SessionID: "b", StartMin: 18 * 60, EndMin: 19 * 60},
		{SessionID: "c", StartMin: 18*60 + 30, EndMin: 19*60 + 45},
		{SessionID: "d", StartMin: 19 * 60, EndMin: 20 * 60},
	}

	assigned := Assign(items, fullDay())
	for i := 0; i < len(assigned); i++ {
		for j := i + 1; j < len(assigned); j++ {
			a, b := assigned[i], assigned[j]
			if a.Column != b.Column {
				continue
			}
			overlap := a.StartMin < b.EndMin && b.StartMin < a.EndMin
			assert.False(t, overlap, "%s and %s share column %d but overlap", a.SessionID, b.SessionID, a.Column)
		}
	}
}

func TestAssign_ClipsToWindowAndDropsDegenerates(t *testing.T) {
	window := Window{StartMin: 17 * 60, EndMin: 21 * 60}
	items := []Item{
		{SessionID: "inside", StartMin: 18 * 60, EndMin: 19 * 60},
		{SessionID: "straddles", StartMin: 16 * 60, EndMin: 18 * 60},
		{SessionID: "before", StartMin: 8 * 60, EndMin: 9 * 60},
	}

	assigned := Assign(items, window)
	require.Len(t, assigned, 2)

	byID := make(map[string]Item)
	for _, it := range assigned {
		byID[it.SessionID] = it
	}
	assert.Equal(t, 17*60, byID["straddles"].StartMin)
	assert.Equal(t, 18*60, byID["straddles"].EndMin)
	assert.NotContains(t, byID, "before")
}
