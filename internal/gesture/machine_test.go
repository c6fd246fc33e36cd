package gesture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

func TestMachine_BeginWhileDraggingRejected(t *testing.T) {
	m := NewMachine()

	require.NoError(t, m.Begin(DragItem{Kind: DragEvent, SessionID: "a"}))
	err := m.Begin(DragItem{Kind: DragEvent, SessionID: "b"})
	assert.ErrorIs(t, err, ErrDragActive)

	// The original gesture is still the active one.
	item, dragging := m.Dragging()
	assert.True(t, dragging)
	assert.Equal(t, "a", item.SessionID)
}

func TestMachine_MoveWithoutBegin(t *testing.T) {
	m := NewMachine()
	err := m.Move(DropTarget{Kind: TargetSlot, Date: "2026-02-24", StartMin: 18 * 60})
	assert.ErrorIs(t, err, ErrNoDrag)
}

func TestMachine_MoveRecordsHoverOnly(t *testing.T) {
	m := NewMachine()
	plan := domain.Plan{WeekID: "2026-W09", Sessions: []domain.Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90},
	}}

	require.NoError(t, m.Begin(DragItem{Kind: DragEvent, SessionID: "a"}))
	require.NoError(t, m.Move(DropTarget{Kind: TargetSlot, Date: "2026-02-25", StartMin: 9 * 60}))
	require.NoError(t, m.Move(DropTarget{Kind: TargetSlot, Date: "2026-02-26", StartMin: 10 * 60}))

	hover := m.Hover()
	require.NotNil(t, hover)
	assert.Equal(t, "2026-02-26", hover.Date)
	// Moving never touches the plan.
	assert.Equal(t, "2026-02-24", plan.Sessions[0].Date)
}

func TestMachine_CancelEndsGesture(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Begin(DragItem{Kind: DragEvent, SessionID: "a"}))
	m.Cancel()

	_, dragging := m.Dragging()
	assert.False(t, dragging)
	assert.Nil(t, m.Hover())
	require.NoError(t, m.Begin(DragItem{Kind: DragEvent, SessionID: "b"}))
}

func TestMachine_DropWithoutBegin(t *testing.T) {
	m := NewMachine()
	plan := domain.Plan{WeekID: "2026-W09"}

	result, err := m.Drop(context.Background(), plan, DropTarget{Kind: TargetSlot}, Deps{})
	assert.ErrorIs(t, err, ErrNoDrag)
	assert.Equal(t, plan, result.Plan)
}

func TestMachine_DropOnWrongTargetKindIsNoOp(t *testing.T) {
	plan := domain.Plan{WeekID: "2026-W09", Sessions: []domain.Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90},
	}}

	tests := []struct {
		name   string
		item   DragItem
		target DropTarget
	}{
		{"event on session", DragItem{Kind: DragEvent, SessionID: "a"}, DropTarget{Kind: TargetSession, SessionID: "a"}},
		{"resize on session", DragItem{Kind: DragResize, SessionID: "a"}, DropTarget{Kind: TargetSession, SessionID: "a"}},
		{"player on slot", DragItem{Kind: DragPlayer, SessionID: "a", PersonID: "p1"}, DropTarget{Kind: TargetSlot, Date: "2026-02-24", StartMin: 18 * 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			require.NoError(t, m.Begin(tt.item))

			result, err := m.Drop(context.Background(), plan, tt.target, Deps{})
			require.NoError(t, err)
			assert.False(t, result.Changed)
			assert.Equal(t, plan, result.Plan)

			// The gesture ended either way.
			_, dragging := m.Dragging()
			assert.False(t, dragging)
		})
	}
}
