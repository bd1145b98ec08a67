package report

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/friendsofgo/errors"
)

type keyedEntry struct {
	VectorFile string   `json:"vector_file"`
	Result     string   `json:"result"`
	Errors     []string `json:"errors,omitempty"`
}

// keyBySchema turns a report into an object keyed by schema name so a merge patch points at the
// divergent suites instead of replacing the whole array.
func keyBySchema(entries []Entry) (map[string]keyedEntry, error) {
	keyed := make(map[string]keyedEntry, len(entries))
	for _, e := range entries {
		if _, exists := keyed[e.SchemaName]; exists {
			return nil, fmt.Errorf("schema %s appears more than once", e.SchemaName)
		}
		keyed[e.SchemaName] = keyedEntry{VectorFile: e.VectorFile, Result: e.Result, Errors: e.Errors}
	}
	return keyed, nil
}

// Diff compares two normalized reports. It returns a JSON merge patch that turns base into other
// and whether the two reports agree.
func Diff(base, other []Entry) (patch []byte, equal bool, err error) {
	baseKeyed, err := keyBySchema(base)
	if err != nil {
		return nil, false, errors.Wrap(err, "invalid base report")
	}
	otherKeyed, err := keyBySchema(other)
	if err != nil {
		return nil, false, errors.Wrap(err, "invalid other report")
	}

	baseJSON, err := json.Marshal(baseKeyed)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to marshal base report")
	}
	otherJSON, err := json.Marshal(otherKeyed)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to marshal other report")
	}

	if jsonpatch.Equal(baseJSON, otherJSON) {
		return nil, true, nil
	}

	patch, err = jsonpatch.CreateMergePatch(baseJSON, otherJSON)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to create merge patch")
	}

	return patch, false, nil
}
