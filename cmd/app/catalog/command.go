package catalog

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repo"
)

// Command prints an activity catalog in the same format GET /activities serves, so its output
// can be edited and fed back through MERGINGTON_CATALOG_PATH.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "print the activity catalog the registry would be seeded with",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "validate and print a catalog file instead of the built-in one",
				EnvVars: []string{"MERGINGTON_CATALOG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			var (
				activities []*model.Activity
				err        error
			)
			if path := c.String("file"); path != "" {
				activities, err = repo.LoadCatalog(path)
				if err != nil {
					return err
				}
			} else {
				activities = repo.DefaultCatalog()
			}

			r, err := repo.NewActivityFromCatalog(activities)
			if err != nil {
				return err
			}
			set, err := r.GetActivities(c.Context)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		},
	}
}
