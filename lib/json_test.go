package lib

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/friendsofgo/errors"
	"github.com/stretchr/testify/require"
)

func Test_DecodeJSON(t *testing.T) {
	testCases := []struct {
		input    string
		valid    bool
		expected any
	}{
		{input: `{"id":"a","data":1}`, valid: true, expected: map[string]any{"id": "a", "data": json.Number("1")}},
		{input: `[1.50, "x", null]`, valid: true, expected: []any{json.Number("1.50"), "x", nil}},
		{input: `  "padded"  `, valid: true, expected: "padded"},
		{input: `{"id":`, valid: false},
		{input: `{} {}`, valid: false},
		{input: ``, valid: false},
		{input: "{\"id\":\"a\xff\"}", valid: false},
		{input: "\"\xc3\x28\"", valid: false},
	}

	for _, tc := range testCases {
		v, err := DecodeJSON([]byte(tc.input))
		if tc.valid {
			require.NoError(t, err, tc.input)
			require.Equal(t, tc.expected, v)
		} else {
			require.Error(t, err, tc.input)
		}
	}
}

func Test_LoadJSON(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"valid":[{"id":"a"}]}`), 0o644))
	v, err := LoadJSON(good)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"valid": []any{map[string]any{"id": "a"}}}, v)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"valid":[}`), 0o644))
	_, err = LoadJSON(bad)
	require.ErrorContains(t, err, bad)

	missing := filepath.Join(dir, "missing.json")
	_, err = LoadJSON(missing)
	require.ErrorContains(t, err, missing)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func Test_ReadJSONOrJSON5AsJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.json":      {Data: []byte(`{"a":1}`)},
		"commented.json5": {Data: []byte("{\n// comment\n\"a\":1}")},
		"both.json":       {Data: []byte(`{}`)},
		"both.json5":      {Data: []byte(`{}`)},
		"dir.json/x":      {Data: []byte(`{}`)},
	}

	data, wasJSON5, err := ReadJSONOrJSON5AsJSON(fsys, "plain")
	require.NoError(t, err)
	require.False(t, wasJSON5)
	require.JSONEq(t, `{"a":1}`, string(data))

	data, wasJSON5, err = ReadJSONOrJSON5AsJSON(fsys, "commented")
	require.NoError(t, err)
	require.True(t, wasJSON5)
	require.JSONEq(t, `{"a":1}`, string(data))

	_, _, err = ReadJSONOrJSON5AsJSON(fsys, "both")
	require.Error(t, err)

	_, _, err = ReadJSONOrJSON5AsJSON(fsys, "dir")
	require.Error(t, err)

	_, _, err = ReadJSONOrJSON5AsJSON(fsys, "missing")
	require.True(t, errors.Is(err, os.ErrNotExist))
}
