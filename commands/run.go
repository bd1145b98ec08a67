package commands

import (
	"github.com/0xHoneyJar/loa-hounfour/lib"
	"github.com/0xHoneyJar/loa-hounfour/report"
	"github.com/0xHoneyJar/loa-hounfour/schema"
	"github.com/0xHoneyJar/loa-hounfour/static"
	"github.com/0xHoneyJar/loa-hounfour/suite"
	"github.com/friendsofgo/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/mod/semver"
)

// RunFlags returns a fresh set of run flags. The app root and the run subcommand each get their
// own copy.
func RunFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:    "root",
			Usage:   "Project root containing schemas/ and vectors/. Defaults to the directory the runner binary is installed under",
			Aliases: []string{"r"},
		},
		&cli.IntFlag{
			Name:  "levels",
			Usage: "Number of parent directories between the runner binary and the project root",
			Value: static.RootLevels,
		},
		&cli.PathFlag{
			Name:      "suites",
			Usage:     "Suite manifest (json, json5 or yaml) to use instead of the built-in suite list",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "JSON Schema engine: santhosh or gojsonschema",
			Value: string(schema.DefaultEngine),
		},
		&cli.BoolFlag{
			Name:  "remote-refs",
			Usage: "Allow $ref to http and https URLs",
		},
		&cli.StringFlag{
			Name:  "contract-version",
			Usage: "Skip suites introduced after this contract version, e.g. v3.0.0",
		},
		&cli.PathFlag{
			Name:      "report",
			Usage:     "Write the normalized cross-runner report to this path",
			TakesFile: true,
		},
		&cli.PathFlag{
			Name:      "metrics",
			Usage:     "Write run counters in Prometheus text format to this path",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Usage:   "Hide per-vector lines and show a progress bar instead",
			Aliases: []string{"q"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Diagnostic log level: debug, info, warn or error",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Diagnostic log format: console or json",
			Value: "console",
		},
	}
}

var RunCommand = &cli.Command{
	Name:   "run",
	Usage:  "validate every golden vector against its schema",
	Flags:  RunFlags(),
	Action: RunAction,
}

type runOptions struct {
	Root            string
	Levels          int
	SuitesPath      string
	Engine          string
	RemoteRefs      bool
	ContractVersion string
	ReportPath      string
	MetricsPath     string
	Quiet           bool
	Log             lib.LogConfig
}

func runOptionsFromContext(c *cli.Context) runOptions {
	return runOptions{
		Root:            c.Path("root"),
		Levels:          c.Int("levels"),
		SuitesPath:      c.Path("suites"),
		Engine:          c.String("engine"),
		RemoteRefs:      c.Bool("remote-refs"),
		ContractVersion: c.String("contract-version"),
		ReportPath:      c.Path("report"),
		MetricsPath:     c.Path("metrics"),
		Quiet:           c.Bool("quiet"),
		Log: lib.LogConfig{
			Level:  c.String("log-level"),
			Format: c.String("log-format"),
		},
	}
}

func (o runOptions) Validate() error {
	engines := make([]interface{}, 0, len(schema.Engines()))
	for _, e := range schema.Engines() {
		engines = append(engines, string(e))
	}

	return validation.Errors{
		"levels":           validation.Validate(o.Levels, validation.Min(0)),
		"engine":           validation.Validate(o.Engine, validation.Required, validation.In(engines...)),
		"contract-version": validation.Validate(o.ContractVersion, validation.By(semverFlag)),
		"log-level":        validation.Validate(o.Log.Level, validation.In("debug", "info", "warn", "error")),
		"log-format":       validation.Validate(o.Log.Format, validation.In("console", "json")),
	}.Filter()
}

func semverFlag(value interface{}) error {
	v, _ := value.(string)
	if v != "" && !semver.IsValid(v) {
		return errors.New("must be a semantic version like v3.1.0")
	}
	return nil
}

func (o runOptions) suites() ([]suite.Suite, error) {
	if o.SuitesPath == "" {
		return suite.Default(), nil
	}
	return suite.LoadManifest(o.SuitesPath)
}

func (o runOptions) root() (string, error) {
	if o.Root != "" {
		root, err := lib.RepoRoot(o.Root, 0)
		if err != nil {
			return "", &suite.FatalError{Path: o.Root, Err: err}
		}
		return root, nil
	}

	root, err := lib.RepoRootFromExecutable(o.Levels)
	if err != nil {
		return "", &suite.FatalError{Path: "repo root", Err: err}
	}
	return root, nil
}

func (o runOptions) compiler() (schema.Compiler, error) {
	var opts []schema.Option
	if o.RemoteRefs {
		opts = append(opts, schema.WithRemoteRefs())
	}
	return schema.NewCompiler(schema.Engine(o.Engine), opts...)
}

func RunAction(c *cli.Context) error {
	opts := runOptionsFromContext(c)
	if err := opts.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	lib.InitLoggingTo(c.App.ErrWriter, opts.Log)

	suites, err := opts.suites()
	if err != nil {
		return errors.Wrap(err, "failed to load suites")
	}

	root, err := opts.root()
	if err != nil {
		return err
	}
	log.Debug().Str("root", root).Int("suites", len(suites)).Str("engine", opts.Engine).Msg("starting run")

	compiler, err := opts.compiler()
	if err != nil {
		return err
	}

	out := c.App.Writer
	report.PrintBanner(out)

	runner := &suite.Runner{
		Root:            root,
		Compiler:        compiler,
		Out:             out,
		ContractVersion: opts.ContractVersion,
	}

	if opts.Quiet {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(c.App.ErrWriter),
			progressbar.OptionSetDescription("validating vectors"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()

		runner.Out = nil
		runner.OnEntry = func(_ string, _ bool) {
			_ = bar.Add(1)
		}
	}

	result := &suite.Result{}
	if err := runner.Run(suites, result); err != nil {
		return err
	}

	report.PrintSummary(out, result)

	if opts.ReportPath != "" {
		if err := report.WriteNormalized(opts.ReportPath, result); err != nil {
			return err
		}
	}

	if opts.MetricsPath != "" {
		if err := report.WriteMetrics(opts.MetricsPath, result); err != nil {
			return err
		}
	}

	if !result.OK() {
		return suite.ErrFailures
	}

	return nil
}
