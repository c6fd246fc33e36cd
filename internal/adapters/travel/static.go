// Package travel provides the config-backed travel duration lookup.
// Real route computation lives behind an external proxy; the planner only
// ever stores a cached minute value on a session.
package travel

import (
	"context"
	"strings"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
)

// StaticProvider serves travel minutes from a fixed location table
// (settings.json "travel_defaults"). Lookup is case-insensitive.
type StaticProvider struct {
	minutes map[string]int
}

var _ ports.TravelTimeProvider = (*StaticProvider)(nil)

// NewStaticProvider creates a provider from a location -> minutes table.
func NewStaticProvider(minutes map[string]int) *StaticProvider {
	normalized := make(map[string]int, len(minutes))
	for location, m := range minutes {
		normalized[strings.ToLower(strings.TrimSpace(location))] = m
	}
	return &StaticProvider{minutes: normalized}
}

// TravelMinutes returns the cached duration for a location, if known.
func (p *StaticProvider) TravelMinutes(_ context.Context, location string) (int, bool) {
	m, ok := p.minutes[strings.ToLower(strings.TrimSpace(location))]
	if !ok || m < 0 {
		return 0, false
	}
	return m, true
}
