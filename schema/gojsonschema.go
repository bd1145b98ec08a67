package schema

import (
	"github.com/0xHoneyJar/loa-hounfour/lib"
	"github.com/friendsofgo/errors"
	"github.com/xeipuuv/gojsonschema"
)

type goJSONSchemaCompiler struct {
	remoteRefs bool
}

// Compile registers the parsed document and everything it references under their URLs, so
// gojsonschema resolves $refs from the pool and never reads or fetches anything itself.
func (c *goJSONSchemaCompiler) Compile(location string, doc any) (Validator, error) {
	rootURL, err := fileURL(location)
	if err != nil {
		return nil, err
	}

	var remote *httpLoader
	if c.remoteRefs {
		remote = newHTTPLoader()
	}

	docs, err := collectRefDocuments(rootURL, doc, remote)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile schema %s", location)
	}

	schemaLoader := gojsonschema.NewSchemaLoader()
	schemaLoader.Validate = true

	for _, d := range docs {
		if err := schemaLoader.AddSchema(d.url, gojsonschema.NewGoLoader(d.doc)); err != nil {
			return nil, errors.Wrapf(err, "failed to add schema %s", d.url)
		}
	}

	sch, err := schemaLoader.Compile(gojsonschema.NewReferenceLoader(rootURL))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile schema %s", location)
	}

	return goJSONSchemaValidator{schema: sch}, nil
}

type goJSONSchemaValidator struct {
	schema *gojsonschema.Schema
}

func (v goJSONSchemaValidator) Validate(instance any) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(instance))
	if err != nil {
		return errors.Wrap(err, "failed to validate")
	}

	if result.Valid() {
		return nil
	}

	resultErrors := result.Errors()
	messages := make([]string, len(resultErrors))
	for i, validationError := range resultErrors {
		messages[i] = validationError.String()
	}

	return lib.JoinMessages(messages)
}
