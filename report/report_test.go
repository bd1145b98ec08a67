package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xHoneyJar/loa-hounfour/suite"
	"github.com/stretchr/testify/require"
)

var (
	eventSuite   = suite.Suite{Schema: "domain-event", VectorFile: "domain-event/events.json", ValidBucket: "valid_events", InvalidBucket: "invalid"}
	billingSuite = suite.Suite{Schema: "billing-entry", VectorFile: "billing/allocation.json", ValidBucket: "valid_entries", InvalidBucket: "invalid_entries"}
)

func sampleResult() *suite.Result {
	return &suite.Result{
		Passed:   5,
		Failed:   1,
		Messages: []string{"billing-entry/neg-amount: expected invalid, got valid"},
		Suites: []suite.SuiteResult{
			{Suite: eventSuite, Passed: 3},
			{Suite: billingSuite, Passed: 2, Failed: 1, Messages: []string{"billing-entry/neg-amount: expected invalid, got valid"}},
		},
		Skipped: []string{"thinking-trace"},
	}
}

func Test_PrintSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintSummary(buf, sampleResult())

	expected := "\n" + strings.Repeat("=", 50) + "\n" +
		"Results: 5 passed, 1 failed\n" +
		"\nFailures:\n" +
		"  billing-entry/neg-amount: expected invalid, got valid\n"
	require.Equal(t, expected, buf.String())

	buf.Reset()
	PrintSummary(buf, &suite.Result{Passed: 2})
	require.NotContains(t, buf.String(), "Failures:")
	require.Contains(t, buf.String(), "Results: 2 passed, 0 failed\n")
}

func Test_PrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, len(lines[0]), len(lines[1]))
	require.Equal(t, strings.Repeat("=", len(lines[0])), lines[1])
}

func Test_Normalize(t *testing.T) {
	entries := Normalize(sampleResult())
	require.Equal(t, []Entry{
		{SchemaName: "domain-event", VectorFile: "vectors/domain-event/events.json", Result: StatusPass},
		{SchemaName: "billing-entry", VectorFile: "vectors/billing/allocation.json", Result: StatusFail, Errors: []string{"billing-entry/neg-amount: expected invalid, got valid"}},
	}, entries)
}

func Test_WriteNormalized_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteNormalized(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"schema_name":"domain-event","vector_file":"vectors/domain-event/events.json","result":"pass"},
		{"schema_name":"billing-entry","vector_file":"vectors/billing/allocation.json","result":"fail","errors":["billing-entry/neg-amount: expected invalid, got valid"]}
	]`, string(data))

	entries, err := ReadNormalized(path)
	require.NoError(t, err)
	require.Equal(t, Normalize(sampleResult()), entries)
}

func Test_Diff(t *testing.T) {
	base := Normalize(sampleResult())

	// same suites in a different order agree
	reordered := []Entry{base[1], base[0]}
	patch, equal, err := Diff(base, reordered)
	require.NoError(t, err)
	require.True(t, equal)
	require.Nil(t, patch)

	other := []Entry{
		base[0],
		{SchemaName: "billing-entry", VectorFile: "vectors/billing/allocation.json", Result: StatusPass},
		{SchemaName: "health-status", VectorFile: "vectors/health/health-status.json", Result: StatusPass},
	}
	patch, equal, err = Diff(base, other)
	require.NoError(t, err)
	require.False(t, equal)
	require.JSONEq(t, `{
		"billing-entry": {"result":"pass","errors":null},
		"health-status": {"vector_file":"vectors/health/health-status.json","result":"pass"}
	}`, string(patch))

	_, _, err = Diff([]Entry{base[0], base[0]}, base)
	require.Error(t, err)
}

func Test_WriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.prom")
	require.NoError(t, WriteMetrics(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, `hounfour_vectors_passed_total{schema="domain-event"} 3`)
	require.Contains(t, text, `hounfour_vectors_passed_total{schema="billing-entry"} 2`)
	require.Contains(t, text, `hounfour_vectors_failed_total{schema="billing-entry"} 1`)
	require.Contains(t, text, `hounfour_vectors_failed_total{schema="domain-event"} 0`)
	require.Contains(t, text, "hounfour_suites_skipped_total 1")
}
