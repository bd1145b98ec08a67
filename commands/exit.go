package commands

import (
	"github.com/0xHoneyJar/loa-hounfour/suite"
	"github.com/friendsofgo/errors"
)

const (
	ExitOK       = 0
	ExitFailures = 1
	ExitFatal    = 2
)

// ExitCode maps the error returned by an action to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, suite.ErrFailures), errors.Is(err, ErrReportsDiffer):
		return ExitFailures
	default:
		return ExitFatal
	}
}
