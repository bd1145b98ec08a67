package commands

import (
	"fmt"

	"github.com/0xHoneyJar/loa-hounfour/report"
	"github.com/friendsofgo/errors"
	"github.com/urfave/cli/v2"
)

// ErrReportsDiffer is returned when two normalized reports disagree.
var ErrReportsDiffer = errors.New("reports differ")

var DiffCommand = &cli.Command{
	Name:      "diff",
	Usage:     "compare two normalized cross-runner reports",
	ArgsUsage: "<base-report> <other-report>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.Errorf("expected 2 report paths, got %d", c.NArg())
		}
		basePath, otherPath := c.Args().Get(0), c.Args().Get(1)

		base, err := report.ReadNormalized(basePath)
		if err != nil {
			return err
		}
		other, err := report.ReadNormalized(otherPath)
		if err != nil {
			return err
		}

		patch, equal, err := report.Diff(base, other)
		if err != nil {
			return errors.Wrap(err, "failed to compare reports")
		}

		out := c.App.Writer
		if equal {
			fmt.Fprintf(out, "%s and %s agree on %d suites\n", basePath, otherPath, len(base))
			return nil
		}

		fmt.Fprintf(out, "%s diverges from %s:\n%s\n", otherPath, basePath, patch)
		return ErrReportsDiffer
	},
}
