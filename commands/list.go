package commands

import (
	"fmt"

	"github.com/0xHoneyJar/loa-hounfour/suite"
	"github.com/friendsofgo/errors"
	"github.com/urfave/cli/v2"
)

var ListCommand = &cli.Command{
	Name:  "list",
	Usage: "list the suites in run order",
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:      "suites",
			Usage:     "Suite manifest (json, json5 or yaml) to list instead of the built-in suite list",
			TakesFile: true,
		},
	},
	Action: func(c *cli.Context) error {
		suites := suite.Default()
		if manifestPath := c.Path("suites"); manifestPath != "" {
			var err error
			suites, err = suite.LoadManifest(manifestPath)
			if err != nil {
				return errors.Wrap(err, "failed to load suites")
			}
		}

		out := c.App.Writer
		for i, s := range suites {
			since := s.Since
			if since == "" {
				since = "-"
			}
			fmt.Fprintf(out, "%d. %s\n", i+1, s.Schema)
			fmt.Fprintf(out, "\tvectors: %s\n", s.RelVectorPath())
			fmt.Fprintf(out, "\tbuckets: %s / %s\n", s.ValidBucket, s.InvalidBucket)
			fmt.Fprintf(out, "\tsince:   %s\n", since)
		}

		return nil
	},
}
