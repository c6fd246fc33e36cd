package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/cmd"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/version"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("weekplaner"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
