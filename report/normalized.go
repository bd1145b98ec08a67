package report

import (
	"os"

	"github.com/0xHoneyJar/loa-hounfour/suite"
	"github.com/friendsofgo/errors"
	json "github.com/goccy/go-json"
)

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Entry is one suite in the normalized format shared by every vector runner, so reports from
// different languages can be diffed directly.
type Entry struct {
	SchemaName string   `json:"schema_name"`
	VectorFile string   `json:"vector_file"`
	Result     string   `json:"result"`
	Errors     []string `json:"errors,omitempty"`
}

// Normalize converts the suites that ran into report entries, in run order.
func Normalize(result *suite.Result) []Entry {
	entries := make([]Entry, 0, len(result.Suites))
	for _, s := range result.Suites {
		entry := Entry{
			SchemaName: s.Suite.Schema,
			VectorFile: s.Suite.RelVectorPath(),
			Result:     StatusPass,
		}
		if s.Failed > 0 {
			entry.Result = StatusFail
			entry.Errors = append([]string(nil), s.Messages...)
		}
		entries = append(entries, entry)
	}
	return entries
}

func WriteNormalized(path string, result *suite.Result) error {
	data, err := json.MarshalIndent(Normalize(result), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write report %s", path)
	}

	return nil
}

func ReadNormalized(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read report %s", path)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse report %s", path)
	}

	return entries, nil
}
