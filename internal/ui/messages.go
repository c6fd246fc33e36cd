package ui

import (
	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
)

// planLoadedMsg delivers a freshly loaded week plan and roster.
type planLoadedMsg struct {
	plan   domain.Plan
	people []domain.Person
	err    error
}

// dropAppliedMsg delivers the outcome of a drop gesture.
type dropAppliedMsg struct {
	result gesture.Result
	err    error
}

// sessionSavedMsg delivers the plan after a form-driven session edit.
type sessionSavedMsg struct {
	plan domain.Plan
	err  error
}

// clearNoticeMsg clears the transient notice line after a delay.
type clearNoticeMsg struct{}
