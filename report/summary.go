// Package report renders a finished run: the human summary, the normalized cross-runner report
// and a Prometheus metrics file.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xHoneyJar/loa-hounfour/static"
	"github.com/0xHoneyJar/loa-hounfour/suite"
)

func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, static.RunnerName)
	fmt.Fprintln(w, strings.Repeat("=", len(static.RunnerName)))
}

// PrintSummary prints the totals and every failure message in the order it was recorded.
func PrintSummary(w io.Writer, result *suite.Result) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(w, "Results: %d passed, %d failed\n", result.Passed, result.Failed)

	if len(result.Messages) > 0 {
		fmt.Fprintln(w, "\nFailures:")
		for _, message := range result.Messages {
			fmt.Fprintf(w, "  %s\n", message)
		}
	}
}
