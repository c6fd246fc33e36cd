package cmd

import (
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if s.Host == "localhost" && cli.settings.SSHHost != "" {
			s.Host = cli.settings.SSHHost
		}
		if s.Port == "2222" && cli.settings.SSHPort != "" {
			s.Port = cli.settings.SSHPort
		}
	}

	dbPath := config.GetDBPath()
	logging.Logger.Info("starting weekplaner SSH server",
		"host", s.Host,
		"port", s.Port,
		"db_path", dbPath)

	srv, err := server.NewServer(s.Host, s.Port, dbPath, cli.settings)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
