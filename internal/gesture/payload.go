package gesture

// DragKind identifies what is being dragged.
type DragKind string

const (
	DragPlayer   DragKind = "player"
	DragEvent    DragKind = "calendarEvent"
	DragResize   DragKind = "calendarResize"
	DragPreBlock DragKind = "calendarPreBlock"
)

// PreBlockKind distinguishes the two derived pre-activity blocks.
type PreBlockKind string

const (
	PreBlockTravel PreBlockKind = "TRAVEL"
	PreBlockWarmup PreBlockKind = "WARMUP"
)

// DragItem is the dragged payload of a gesture. SessionID is the owning
// session for calendar kinds; PersonID is set for player drags; PreBlock
// is set for pre-block drags.
type DragItem struct {
	Kind      DragKind
	SessionID string
	PersonID  string
	PreBlock  PreBlockKind
}

// TargetKind identifies what a gesture was dropped on.
type TargetKind string

const (
	TargetSession TargetKind = "session"
	TargetSlot    TargetKind = "calendarSlot"
)

// DropTarget is the drop location of a gesture. SessionID is set for
// session targets; Date and StartMin for calendar slots.
type DropTarget struct {
	Kind      TargetKind
	SessionID string
	Date      string
	StartMin  int
}
