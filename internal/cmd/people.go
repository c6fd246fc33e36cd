package cmd

// PeopleCmd manages the roster
type PeopleCmd struct {
	List       PeopleListCmd       `cmd:"list" help:"List roster members" default:"1"`
	Add        PeopleAddCmd        `cmd:"add" help:"Add a roster member"`
	SetLicense PeopleSetLicenseCmd `cmd:"set-license" help:"Store a license number for a roster member"`
	Del        PeopleDelCmd        `cmd:"del" help:"Delete a roster member"`
}
