// Package suite runs golden vector files against compiled JSON Schemas and aggregates the
// outcome of every vector into a single pass/fail verdict.
package suite

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/0xHoneyJar/loa-hounfour/static"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/mod/semver"
)

// Suite pairs one schema with one vector file and the names of its two buckets.
type Suite struct {
	// Schema is the schema name; the schema lives at schemas/<Schema>.schema.json.
	Schema string `json:"schema" yaml:"schema"`
	// VectorFile is the vector document path relative to the vectors directory, slash separated.
	VectorFile    string `json:"vectorFile" yaml:"vectorFile"`
	ValidBucket   string `json:"valid" yaml:"valid"`
	InvalidBucket string `json:"invalid" yaml:"invalid"`
	// Since is the contract version that introduced the suite. Empty means always.
	Since string `json:"since,omitempty" yaml:"since,omitempty"`
}

var schemaNameRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (s Suite) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Schema, validation.Required, validation.Match(schemaNameRegex)),
		validation.Field(&s.VectorFile, validation.Required, validation.By(relativeSlashPath)),
		validation.Field(&s.ValidBucket, validation.Required),
		validation.Field(&s.InvalidBucket, validation.Required, validation.NotIn(s.ValidBucket).Error("must differ from the valid bucket")),
		validation.Field(&s.Since, validation.By(semverString)),
	)
}

func relativeSlashPath(value interface{}) error {
	p, _ := value.(string)
	if p == "" {
		return nil
	}
	if path.IsAbs(p) || filepath.IsAbs(p) || strings.Contains(p, `\`) {
		return validation.NewError("validation_relative_path", "must be a relative slash separated path")
	}
	if clean := path.Clean(p); clean == ".." || strings.HasPrefix(clean, "../") {
		return validation.NewError("validation_relative_path", "must stay inside the vectors directory")
	}
	return nil
}

func semverString(value interface{}) error {
	v, _ := value.(string)
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return validation.NewError("validation_semver", "must be a semantic version like v3.1.0")
	}
	return nil
}

func (s Suite) SchemaPath(root string) string {
	return filepath.Join(root, static.SchemasDir, s.Schema+static.SchemaFileSuffix)
}

func (s Suite) VectorPath(root string) string {
	return filepath.Join(root, static.VectorsDir, filepath.FromSlash(s.VectorFile))
}

// RelVectorPath is the vector path relative to the project root, as reported across runners.
func (s Suite) RelVectorPath() string {
	return path.Join(static.VectorsDir, s.VectorFile)
}

// IntroducedAfter reports whether the suite belongs to a contract version newer than version.
// An empty version or Since never excludes a suite.
func (s Suite) IntroducedAfter(version string) bool {
	if version == "" || s.Since == "" {
		return false
	}
	return semver.Compare(s.Since, version) > 0
}

// Default returns the built-in ordered suite list. A fresh slice is returned on every call.
func Default() []Suite {
	return []Suite{
		{Schema: "domain-event", VectorFile: "domain-event/events.json", ValidBucket: "valid_events", InvalidBucket: "invalid", Since: "v3.0.0"},
		{Schema: "domain-event-batch", VectorFile: "domain-event/batches.json", ValidBucket: "valid_batches", InvalidBucket: "invalid_batches", Since: "v3.0.0"},
		{Schema: "conversation", VectorFile: "conversation/conversations.json", ValidBucket: "valid_conversations", InvalidBucket: "invalid", Since: "v3.0.0"},
		{Schema: "billing-entry", VectorFile: "billing/allocation.json", ValidBucket: "valid_entries", InvalidBucket: "invalid_entries", Since: "v3.0.0"},
		{Schema: "transfer-spec", VectorFile: "transfer/transfers.json", ValidBucket: "valid_transfers", InvalidBucket: "invalid_transfers", Since: "v3.0.0"},
		{Schema: "lifecycle-transition-payload", VectorFile: "agent/lifecycle-payloads.json", ValidBucket: "valid_payloads", InvalidBucket: "invalid_payloads", Since: "v3.0.0"},
		{Schema: "health-status", VectorFile: "health/health-status.json", ValidBucket: "valid", InvalidBucket: "invalid", Since: "v3.1.0"},
		{Schema: "thinking-trace", VectorFile: "thinking/thinking-traces.json", ValidBucket: "valid", InvalidBucket: "invalid", Since: "v3.1.0"},
	}
}
