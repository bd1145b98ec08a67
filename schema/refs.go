package schema

import (
	"net/url"
	"path/filepath"
	"sort"

	"github.com/0xHoneyJar/loa-hounfour/lib"
	"github.com/friendsofgo/errors"
)

// refDocument is a schema document reachable through $ref, keyed by its absolute URL.
type refDocument struct {
	url string
	doc any
}

// fileURL turns a schema location on disk into the file URL engines resolve $refs against.
func fileURL(location string) (string, error) {
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", errors.Wrapf(err, "failed to convert %s to an absolute path", location)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// collectRefDocuments walks every $ref reachable from root, following local files and, when
// remote is set, http(s) documents fetched through it. Remote targets are an error when remote
// is nil. Local targets that do not exist are left for the engine to report.
// The root document is the first element of the result.
func collectRefDocuments(rootURL string, root any, remote *httpLoader) ([]refDocument, error) {
	docs := []refDocument{{url: rootURL, doc: root}}
	seen := map[string]struct{}{rootURL: {}}

	for i := 0; i < len(docs); i++ {
		base, err := url.Parse(docs[i].url)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid schema url %s", docs[i].url)
		}
		if id := documentID(docs[i].doc); id != "" {
			if base, err = base.Parse(id); err != nil {
				return nil, errors.Wrapf(err, "invalid $id %s in %s", id, docs[i].url)
			}
		}

		for _, ref := range collectRefs(docs[i].doc) {
			refURL, err := base.Parse(ref)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid $ref %s in %s", ref, docs[i].url)
			}
			refURL.Fragment = ""
			refURL.RawFragment = ""

			target := refURL.String()
			if _, done := seen[target]; done {
				continue
			}
			seen[target] = struct{}{}

			switch refURL.Scheme {
			case "http", "https":
				if remote == nil {
					return nil, errors.Errorf("remote $ref %s in %s is not allowed", ref, docs[i].url)
				}
				doc, err := remote.Load(target)
				if err != nil {
					return nil, err
				}
				docs = append(docs, refDocument{url: target, doc: doc})
			case "file":
				path := filepath.FromSlash(refURL.Path)
				exists, err := lib.FileExists(path)
				if err != nil {
					return nil, err
				}
				if !exists {
					continue
				}
				doc, err := lib.LoadJSON(path)
				if err != nil {
					return nil, err
				}
				docs = append(docs, refDocument{url: target, doc: doc})
			}
		}
	}

	return docs, nil
}

// documentID returns the top-level $id (or draft-04 id) that relative refs resolve against.
func documentID(doc any) string {
	m, ok := doc.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"$id", "id"} {
		if id, ok := m[key].(string); ok && id != "" && id[0] != '#' {
			return id
		}
	}
	return ""
}

// collectRefs returns every $ref string in doc in a stable order. Fragment-only refs point into
// the same document and are left out.
func collectRefs(doc any) []string {
	var refs []string
	var walk func(v any)
	walk = func(v any) {
		switch v := v.(type) {
		case map[string]any:
			if ref, ok := v["$ref"].(string); ok && ref != "" && ref[0] != '#' {
				refs = append(refs, ref)
			}
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				walk(v[key])
			}
		case []any:
			for _, child := range v {
				walk(child)
			}
		}
	}
	walk(doc)
	return refs
}
