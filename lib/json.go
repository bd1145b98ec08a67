package lib

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/adhocore/jsonc"
	"github.com/friendsofgo/errors"
	json "github.com/goccy/go-json"
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog/log"
)

// LoadJSON reads the file at path and decodes it into a generic JSON value.
// Numbers are kept as json.Number so schema engines see the literal the fixture author wrote.
func LoadJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	log.Debug().Str("path", path).Str("size", bytesize.New(float64(len(data))).String()).Msg("loaded artifact")

	v, err := DecodeJSON(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return v, nil
}

// DecodeJSON decodes exactly one JSON document. Trailing data and invalid UTF-8 are errors.
func DecodeJSON(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("invalid UTF-8 in JSON document")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}

	return v, nil
}

// ReadJSONOrJSON5File reads either the .json or .json5 variant of name.
// returns an error if both are found
// returns os.ErrNotExist if neither are found
func ReadJSONOrJSON5File(searchFs fs.FS, name string) (data []byte, isJSON5 bool, err error) {
	path, isJSON5, err := findJSONOrJSON5Path(searchFs, name)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find either json or json5 path")
	}

	f, err := searchFs.Open(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to open file %s", path)
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read json file %s", path)
	}

	return data, isJSON5, nil
}

// ReadJSONOrJSON5AsJSON is ReadJSONOrJSON5File with comments and trailing commas stripped
// from json5 content.
func ReadJSONOrJSON5AsJSON(searchFs fs.FS, name string) (data []byte, wasJSON5 bool, err error) {
	data, isJSON5, err := ReadJSONOrJSON5File(searchFs, name)
	if err != nil {
		return nil, false, err
	}

	if isJSON5 {
		data = StripJSON5(data)
	}

	return data, isJSON5, nil
}

func StripJSON5(data []byte) []byte {
	return jsonc.New().Strip(data)
}

// findJSONOrJSON5Path tries both the .json and .json5 extension
// returns an error if both are found
// returns os.ErrNotExist if neither are found
func findJSONOrJSON5Path(searchFs fs.FS, name string) (path string, json5 bool, err error) {
	jsonPath := name + ".json"
	json5Path := name + ".json5"

	jsonPathExists, err := regularFileExists(searchFs, jsonPath)
	if err != nil {
		return "", false, err
	}

	json5PathExists, err := regularFileExists(searchFs, json5Path)
	if err != nil {
		return "", false, err
	}

	switch {
	case jsonPathExists && json5PathExists:
		return "", false, fmt.Errorf("both a json and a json5 file were found. choose one")
	case jsonPathExists:
		return jsonPath, false, nil
	case json5PathExists:
		return json5Path, true, nil
	default:
		return "", false, errors.Wrap(os.ErrNotExist, "neither json or json5 file was found")
	}
}

func regularFileExists(searchFs fs.FS, path string) (bool, error) {
	info, err := fs.Stat(searchFs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, errors.Wrapf(err, "failed to get info on %s", path)
		}
		return false, nil
	}

	if info.IsDir() {
		return false, fmt.Errorf("expected json file, but found directory %s", path)
	}

	return true, nil
}
