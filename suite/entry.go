package suite

const unknownID = "unknown"

// Entry is one vector of a bucket.
type Entry struct {
	ID string
	// Data is the instance to validate. It is only meaningful when HasData is set;
	// an explicit JSON null is present data.
	Data    any
	HasData bool
	Note    string
}

// parseEntry reads an entry out of a raw bucket element. Non-object elements produce an entry
// with the unknown id and no data.
func parseEntry(raw any) Entry {
	obj, _ := raw.(map[string]any)

	entry := Entry{ID: stringOr(obj, "id", unknownID)}
	entry.Data, entry.HasData = obj["data"]
	entry.Note = stringOr(obj, "note", "")

	return entry
}

func stringOr(obj map[string]any, key, def string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return def
}

// bucket returns the entries stored under key. ok is false when the key is missing or the value
// is not an array; such buckets are ignored.
func bucket(doc any, key string) (entries []Entry, ok bool) {
	obj, isObject := doc.(map[string]any)
	if !isObject {
		return nil, false
	}

	raw, isArray := obj[key].([]any)
	if !isArray {
		return nil, false
	}

	entries = make([]Entry, len(raw))
	for i, element := range raw {
		entries[i] = parseEntry(element)
	}
	return entries, true
}
