// Package gesture interprets pointer-gesture events against a week plan.
// A gesture passes through begin, zero or more moves, and an end; only
// the end commits a mutation. Plans are treated copy-on-write: Drop takes
// a snapshot and returns a new one.
package gesture

import (
	"context"
	"errors"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
)

var (
	// ErrDragActive is returned when Begin is called while a gesture is
	// already in flight. At most one gesture is active at a time.
	ErrDragActive = errors.New("a drag gesture is already active")
	// ErrNoDrag is returned when Drop or Move is called with no gesture
	// in flight.
	ErrNoDrag = errors.New("no drag gesture is active")
)

type machineState int

const (
	stateIdle machineState = iota
	stateDragging
)

// Machine is the gesture state machine: idle or dragging one item.
// Begin/Move never touch the plan; Drop dispatches on the dragged kind
// and target kind and produces the mutation.
type Machine struct {
	state machineState
	item  DragItem
	hover *DropTarget
}

// NewMachine returns an idle gesture machine.
func NewMachine() *Machine {
	return &Machine{}
}

// Dragging reports whether a gesture is in flight, and which item.
func (m *Machine) Dragging() (DragItem, bool) {
	return m.item, m.state == stateDragging
}

// Hover returns the most recent Move target for live feedback, if any.
func (m *Machine) Hover() *DropTarget {
	return m.hover
}

// Begin starts a gesture. A second Begin while dragging is rejected.
func (m *Machine) Begin(item DragItem) error {
	if m.state == stateDragging {
		return ErrDragActive
	}
	m.state = stateDragging
	m.item = item
	m.hover = nil
	logging.Logger.Debug("drag begin", "kind", item.Kind, "session", item.SessionID)
	return nil
}

// Move records the current hover target. It performs no plan writes;
// it exists purely for live visual feedback.
func (m *Machine) Move(target DropTarget) error {
	if m.state != stateDragging {
		return ErrNoDrag
	}
	t := target
	m.hover = &t
	return nil
}

// Cancel abandons the gesture without a mutation.
func (m *Machine) Cancel() {
	m.state = stateIdle
	m.hover = nil
}

// Drop ends the gesture and applies the mutation for the dragged item and
// target. The returned Result carries the new plan snapshot; on a
// rejected drop the plan is returned unchanged with a transient notice.
// Errors are reserved for infrastructure failures (prompt, storage);
// a wrong target kind is a no-op, never an error.
func (m *Machine) Drop(ctx context.Context, plan domain.Plan, target DropTarget, deps Deps) (Result, error) {
	if m.state != stateDragging {
		return Result{Plan: plan}, ErrNoDrag
	}
	item := m.item
	m.state = stateIdle
	m.hover = nil

	logging.Logger.Debug("drag drop",
		"kind", item.Kind,
		"target", target.Kind,
		"session", item.SessionID)

	switch item.Kind {
	case DragPlayer:
		if target.Kind != TargetSession {
			return Result{Plan: plan}, nil
		}
		return assignPlayer(ctx, plan, item, target, deps)
	case DragEvent:
		if target.Kind != TargetSlot {
			return Result{Plan: plan}, nil
		}
		return relocateSession(plan, item, target)
	case DragResize:
		if target.Kind != TargetSlot {
			return Result{Plan: plan}, nil
		}
		return resizeSession(plan, item, target)
	case DragPreBlock:
		if target.Kind != TargetSlot {
			return Result{Plan: plan}, nil
		}
		return resizePreBlock(plan, item, target)
	default:
		return Result{Plan: plan}, nil
	}
}
