package domain

// ValidationErrorKind identifies a single advisory validation finding.
type ValidationErrorKind string

const (
	ValidationMissingID       ValidationErrorKind = "missing_id"
	ValidationMissingDate     ValidationErrorKind = "missing_date"
	ValidationMissingDay      ValidationErrorKind = "missing_day"
	ValidationMissingLocation ValidationErrorKind = "missing_location"
	ValidationEmptyTeams      ValidationErrorKind = "empty_teams"
	ValidationInvalidStart    ValidationErrorKind = "invalid_start"
	ValidationInvalidDuration ValidationErrorKind = "invalid_duration"
)

// ValidationError describes one malformed session field.
type ValidationError struct {
	Kind      ValidationErrorKind
	SessionID string
	Message   string
}

func (e ValidationError) Error() string { return e.Message }

// Validate collects every problem with the session. Findings are advisory;
// the caller decides whether to block a save.
func Validate(s Session) []ValidationError {
	var errs []ValidationError
	add := func(kind ValidationErrorKind, msg string) {
		errs = append(errs, ValidationError{Kind: kind, SessionID: s.ID, Message: msg})
	}

	if s.ID == "" {
		add(ValidationMissingID, "session has no id")
	}
	if s.Date == "" {
		add(ValidationMissingDate, "session has no date")
	}
	if s.Day == "" {
		add(ValidationMissingDay, "session has no day label")
	}
	if s.Location == "" {
		add(ValidationMissingLocation, "session has no location")
	}
	if len(s.Teams) == 0 {
		add(ValidationEmptyTeams, "session has no teams")
	}
	if s.StartMin < 0 || s.StartMin > 1439 {
		add(ValidationInvalidStart, "session start is outside 00:00-23:59")
	}
	if s.DurationMin < MinDurationMin {
		add(ValidationInvalidDuration, "session is shorter than 15 minutes")
	}
	return errs
}

// ValidatePlan validates every session in the plan.
func ValidatePlan(p Plan) []ValidationError {
	var errs []ValidationError
	for _, s := range p.Sessions {
		errs = append(errs, Validate(s)...)
	}
	return errs
}
