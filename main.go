package main

import (
	"fmt"
	"os"
	"time"

	"github.com/0xHoneyJar/loa-hounfour/commands"
	"github.com/0xHoneyJar/loa-hounfour/lib"
	"github.com/0xHoneyJar/loa-hounfour/static"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	lib.InitLogging(lib.DefaultLogConfig())

	os.Exit(commands.ExitCode(newApp().Run(os.Args)))
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "vectors",
		Usage:   "validate the golden vectors against their JSON Schemas",
		Version: static.Version,
		Suggest: true,
		Commands: cli.Commands{
			commands.RunCommand,
			commands.ListCommand,
			commands.DiffCommand,
		},
		Flags:    commands.RunFlags(),
		Action:   commands.RunAction,
		Compiled: time.Time{},
		ExitErrHandler: func(_ *cli.Context, err error) {
			if err == nil {
				return
			}
			if commands.ExitCode(err) == commands.ExitFatal {
				log.Error().Err(err).Msg("run aborted")
			} else {
				fmt.Println("Error:", err.Error())
			}
		},
	}
}
