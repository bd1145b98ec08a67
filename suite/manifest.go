package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xHoneyJar/loa-hounfour/lib"
	"github.com/friendsofgo/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Manifest is an ordered suite list kept in a file instead of the built-in list.
type Manifest struct {
	Suites []Suite `json:"suites" yaml:"suites"`
}

func (m Manifest) Validate() error {
	if err := validation.ValidateStruct(&m,
		validation.Field(&m.Suites, validation.Required),
	); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(m.Suites))
	for i, s := range m.Suites {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "suite %d (%s)", i+1, s.Schema)
		}

		key := s.Schema + "\x00" + s.VectorFile
		if _, exists := seen[key]; exists {
			return fmt.Errorf("suite %d: %s with %s is declared twice", i+1, s.Schema, s.VectorFile)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// LoadManifest reads a suite manifest. .yaml and .yml files are parsed as YAML, everything else
// as JSON or JSON5. A path without extension is resolved to <path>.json or <path>.json5.
func LoadManifest(path string) ([]Suite, error) {
	data, err := readManifest(path)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, errors.Wrapf(err, "failed to parse suite manifest %s", path)
		}
	default:
		if err := json.Unmarshal(data, &manifest); err != nil {
			return nil, errors.Wrapf(err, "failed to parse suite manifest %s", path)
		}
	}

	if err := manifest.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid suite manifest %s", path)
	}

	return manifest.Suites, nil
}

func readManifest(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read suite manifest %s", path)
		}
		return data, nil
	case ".json5":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read suite manifest %s", path)
		}
		return lib.StripJSON5(data), nil
	default:
		data, _, err := lib.ReadJSONOrJSON5AsJSON(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read suite manifest %s", path)
		}
		return data, nil
	}
}
