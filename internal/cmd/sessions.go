package cmd

// SessionsCmd manages the sessions of a week
type SessionsCmd struct {
	Add       SessionsAddCmd       `cmd:"add" help:"Add a session to a week"`
	Del       SessionsDelCmd       `cmd:"del" help:"Delete a session"`
	Move      SessionsMoveCmd      `cmd:"move" aliases:"mv" help:"Move a session to another day or time"`
	Resize    SessionsResizeCmd    `cmd:"resize" help:"Change a training session's duration"`
	Assign    SessionsAssignCmd    `cmd:"assign" help:"Assign a roster member to a session"`
	SetTravel SessionsSetTravelCmd `cmd:"set-travel" help:"Fill a session's travel minutes from the cached location table"`
}
