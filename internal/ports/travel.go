package ports

import "context"

// TravelTimeProvider returns a cached travel duration in minutes for a
// location. The planner only stores the value on a session; it never
// computes distances itself.
type TravelTimeProvider interface {
	TravelMinutes(ctx context.Context, location string) (minutes int, ok bool)
}
