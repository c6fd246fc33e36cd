package cmd

// PlansCmd manages week plans
type PlansCmd struct {
	List       PlansListCmd       `cmd:"list" help:"List stored weeks" default:"1"`
	View       PlansViewCmd       `cmd:"view" help:"View a week's sessions and conflicts"`
	Roster     PlansRosterCmd     `cmd:"roster" help:"List a week's roster sessions and assignments"`
	Duplicate  PlansDuplicateCmd  `cmd:"duplicate" help:"Copy a week's sessions into another week"`
	ImportIcs  PlansImportIcsCmd  `cmd:"import-ics" help:"Merge fixture feed events into a week"`
	ExportIcs  PlansExportIcsCmd  `cmd:"export-ics" help:"Write a week as an iCalendar document"`
	ImportJson PlansImportJsonCmd `cmd:"import-json" help:"Import a legacy plan blob"`
	ExportJson PlansExportJsonCmd `cmd:"export-json" help:"Export a week as a legacy plan blob"`
}
