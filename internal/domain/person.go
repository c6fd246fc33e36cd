package domain

import "sort"

// Person is a roster member who can be assigned to sessions.
type Person struct {
	ID        string
	Name      string
	Group     string
	LicenseNo string
}

// gatedSquads are the squad codes whose competitive fixtures require a
// license number before a participant may be assigned. The set is a fixed
// literal; nothing in the domain suggests it will grow.
var gatedSquads = map[string]bool{
	"M1": true,
	"M2": true,
	"W1": true,
}

// RequiresLicense reports whether assigning someone to this session needs
// a license number: the session must be a game for a gated squad.
func (s Session) RequiresLicense() bool {
	if !s.IsGame() {
		return false
	}
	for _, team := range s.Teams {
		if gatedSquads[team] {
			return true
		}
	}
	return false
}

// ParticipantLess builds a participant comparator ordering ids by the
// person's group, then name. Unknown ids sort after known ones, by id.
func ParticipantLess(people map[string]Person) func(a, b string) bool {
	return func(a, b string) bool {
		pa, okA := people[a]
		pb, okB := people[b]
		if okA != okB {
			return okA
		}
		if !okA {
			return a < b
		}
		if pa.Group != pb.Group {
			return pa.Group < pb.Group
		}
		if pa.Name != pb.Name {
			return pa.Name < pb.Name
		}
		return pa.ID < pb.ID
	}
}

// SortParticipants returns the ids ordered by the given comparator.
func SortParticipants(ids []string, less func(a, b string) bool) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}
