package cli

import (
	"github.com/gnomegl/gitscore/internal/config"
	"github.com/gnomegl/gitscore/internal/display"
	"github.com/gnomegl/gitscore/internal/github"
	"github.com/gnomegl/gitscore/internal/utils"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options] <username>
       {{.HelpName}} [options] serve [--addr :8080]

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

// NewApp builds the command line. analyze runs for a bare username, serve
// for the serve subcommand.
func NewApp(analyze, serve cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate
	// -v belongs to --verbose
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}

	return &cli.App{
		Name:    "gitscore",
		Usage:   "Score a GitHub profile and derive career insights and contribution patterns",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token",
				EnvVars: []string{github.TokenEnv},
			},
			&cli.StringFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Write the JSON export to `PATH` (a directory picks a file name, - is stdout)",
			},
			&cli.StringFlag{
				Name:    "report",
				Aliases: []string{"r"},
				Usage:   "Write the printable HTML report to `PATH` (a directory picks a file name)",
			},
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "Sort repositories by stars, forks, updated or created",
				Value:   display.SortStars,
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "Only list repositories whose primary language is `LANG`",
			},
			&cli.StringFlag{
				Name:    "timezone",
				Usage:   "IANA time zone used for day and time-of-day patterns",
				EnvVars: []string{config.TimezoneEnv},
			},
			&cli.BoolFlag{
				Name:  "no-events",
				Usage: "Skip fetching recent public activity",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Hide banner, status lines and progress bars",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Serve analyses over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: config.DefaultAddr,
					},
				},
				Action: serve,
			},
		},
		Action:    analyze,
		ArgsUsage: "<username>",
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
