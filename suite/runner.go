package suite

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/0xHoneyJar/loa-hounfour/lib"
	"github.com/0xHoneyJar/loa-hounfour/schema"
	"github.com/friendsofgo/errors"
	"github.com/rs/zerolog/log"
)

// ErrFailures is returned by callers once a run finished with at least one recorded failure.
var ErrFailures = errors.New("one or more vectors did not match their expected outcome")

// FatalError aborts the whole run. Path names the offending artifact.
type FatalError struct {
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s: %v", e.Path, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(path string, err error) error {
	return &FatalError{Path: path, Err: err}
}

// Runner executes suites sequentially against the project at Root.
type Runner struct {
	Root     string
	Compiler schema.Compiler

	// Out receives the suite headers and per-entry [PASS]/[FAIL] lines.
	Out io.Writer

	// ContractVersion skips suites introduced after this version when set.
	ContractVersion string

	// OnEntry is called after every classified entry.
	OnEntry func(id string, passed bool)
}

// Run executes suites in order against result. The first fatal error stops the run; suites that
// completed before it stay credited, the failing suite contributes nothing.
func (r *Runner) Run(suites []Suite, result *Result) error {
	for _, s := range suites {
		if err := r.RunSuite(s, result); err != nil {
			return err
		}
	}
	return nil
}

// RunSuite runs one suite and merges its outcome into result. A suite whose schema or vector
// file is missing is skipped and records nothing.
func (r *Runner) RunSuite(s Suite, result *Result) error {
	if r.ContractVersion != "" && s.IntroducedAfter(r.ContractVersion) {
		log.Warn().Str("schema", s.Schema).Str("since", s.Since).Str("contract", r.ContractVersion).Msg("SKIP: suite is newer than the contract version")
		result.skip(s)
		return nil
	}

	schemaPath := s.SchemaPath(r.Root)
	vectorPath := s.VectorPath(r.Root)

	for _, p := range []struct{ kind, path string }{
		{"schema", schemaPath},
		{"vectors", vectorPath},
	} {
		exists, err := lib.FileExists(p.path)
		if err != nil {
			return fatal(p.path, err)
		}
		if !exists {
			log.Warn().Str("schema", s.Schema).Str("path", p.path).Msgf("SKIP: %s not found", p.kind)
			result.skip(s)
			return nil
		}
	}

	schemaDoc, err := lib.LoadJSON(schemaPath)
	if err != nil {
		return fatal(schemaPath, err)
	}

	validator, err := r.Compiler.Compile(schemaPath, schemaDoc)
	if err != nil {
		return fatal(schemaPath, err)
	}

	vectors, err := lib.LoadJSON(vectorPath)
	if err != nil {
		return fatal(vectorPath, err)
	}

	r.printf("\n%s (%s):\n", s.Schema, filepath.Base(vectorPath))

	suiteResult := SuiteResult{Suite: s}

	if entries, ok := bucket(vectors, s.ValidBucket); ok {
		for _, entry := range entries {
			if !entry.HasData {
				return fatal(vectorPath, errors.Errorf("entry %s in bucket %s is missing the data field", entry.ID, s.ValidBucket))
			}

			if err := validator.Validate(entry.Data); err == nil {
				r.record(&suiteResult, entry, true, "")
			} else {
				r.record(&suiteResult, entry, false, fmt.Sprintf("%s/%s: expected valid, got invalid", s.Schema, entry.ID))
			}
		}
	}

	if entries, ok := bucket(vectors, s.InvalidBucket); ok {
		for _, entry := range entries {
			if !entry.HasData {
				continue
			}

			if err := validator.Validate(entry.Data); err != nil {
				r.record(&suiteResult, entry, true, "")
			} else {
				r.record(&suiteResult, entry, false, fmt.Sprintf("%s/%s: expected invalid, got valid", s.Schema, entry.ID))
			}
		}
	}

	result.merge(suiteResult)
	return nil
}

func (r *Runner) record(suiteResult *SuiteResult, entry Entry, passed bool, message string) {
	if passed {
		suiteResult.pass()
		r.printf("  [PASS] %s\n", entry.ID)
	} else {
		suiteResult.fail(message)
		r.printf("  [FAIL] %s\n", entry.ID)
		if entry.Note != "" {
			log.Debug().Str("id", entry.ID).Str("note", entry.Note).Msg("failing vector note")
		}
	}

	if r.OnEntry != nil {
		r.OnEntry(entry.ID, passed)
	}
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}
