package suite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_parseEntry(t *testing.T) {
	testCases := []struct {
		raw     any
		id      string
		data    any
		hasData bool
		note    string
	}{
		{
			raw:     map[string]any{"id": "a", "data": "x", "note": "plain string"},
			id:      "a",
			data:    "x",
			hasData: true,
			note:    "plain string",
		},
		{
			raw:     map[string]any{"data": json.Number("1")},
			id:      "unknown",
			data:    json.Number("1"),
			hasData: true,
		},
		{
			raw:     map[string]any{"id": 12, "data": nil},
			id:      "unknown",
			data:    nil,
			hasData: true,
		},
		{
			raw: map[string]any{"id": "marker"},
			id:  "marker",
		},
		{
			raw: "not an object",
			id:  "unknown",
		},
	}

	for _, tc := range testCases {
		entry := parseEntry(tc.raw)
		require.Equal(t, tc.id, entry.ID)
		require.Equal(t, tc.data, entry.Data)
		require.Equal(t, tc.hasData, entry.HasData)
		require.Equal(t, tc.note, entry.Note)
	}
}

func Test_bucket(t *testing.T) {
	doc := map[string]any{
		"valid":  []any{map[string]any{"id": "a", "data": true}, map[string]any{"id": "b"}},
		"object": map[string]any{"id": "a"},
		"empty":  []any{},
	}

	entries, ok := bucket(doc, "valid")
	require.True(t, ok)
	require.Len(t, entries, 2)
	require.Equal(t, "a", entries[0].ID)
	require.Equal(t, "b", entries[1].ID)

	entries, ok = bucket(doc, "empty")
	require.True(t, ok)
	require.Empty(t, entries)

	_, ok = bucket(doc, "object")
	require.False(t, ok)

	_, ok = bucket(doc, "absent")
	require.False(t, ok)

	_, ok = bucket([]any{}, "valid")
	require.False(t, ok)
}
