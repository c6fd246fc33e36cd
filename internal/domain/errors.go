package domain

import "errors"

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrPersonNotFound  = errors.New("person not found")
	ErrPlanExists      = errors.New("plan already exists")
)
