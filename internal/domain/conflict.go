package domain

// Conflict records that a session shares a participant with another,
// time-overlapping session on the same day.
type Conflict struct {
	SessionID string // the other session
	PersonID  string // the shared participant
}

// Overlaps reports whether two sessions intersect in time on the same
// date. Intervals are half-open [start, start+duration); a zero-length
// session never overlaps anything.
func Overlaps(a, b Session) bool {
	if a.Date != b.Date {
		return false
	}
	if a.DurationMin <= 0 || b.DurationMin <= 0 {
		return false
	}
	return a.StartMin < b.EndMin() && b.StartMin < a.EndMin()
}

// Conflicts finds every pair of same-day, overlapping sessions sharing a
// participant. The result maps session id to its conflicts and is
// symmetric: if (B, p) is listed for A, (A, p) is listed for B.
//
// This runs eagerly on every plan read. Plans hold a few dozen sessions
// at most, so the pairwise scan is not worth caching.
func Conflicts(sessions []Session) map[string][]Conflict {
	out := make(map[string][]Conflict)

	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			a, b := sessions[i], sessions[j]
			if a.Date != b.Date {
				continue
			}
			if !Overlaps(a, b) {
				continue
			}
			for _, p := range sharedParticipants(a, b) {
				out[a.ID] = append(out[a.ID], Conflict{SessionID: b.ID, PersonID: p})
				out[b.ID] = append(out[b.ID], Conflict{SessionID: a.ID, PersonID: p})
			}
		}
	}
	return out
}

func sharedParticipants(a, b Session) []string {
	inA := make(map[string]bool, len(a.Participants))
	for _, p := range a.Participants {
		inA[p] = true
	}
	var shared []string
	for _, p := range b.Participants {
		if inA[p] {
			shared = append(shared, p)
		}
	}
	return shared
}
