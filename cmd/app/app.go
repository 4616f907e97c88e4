package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mergington/activities/cmd/app/catalog"
	"github.com/mergington/activities/cmd/app/server"
	"github.com/mergington/activities/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mergington",
		Usage:       "Mergington High School activities backend",
		Description: "Lists extracurricular activities and manages their rosters. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			catalog.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
