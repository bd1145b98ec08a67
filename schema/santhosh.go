package schema

import (
	"github.com/friendsofgo/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type santhoshCompiler struct {
	remoteRefs bool
}

func (c *santhoshCompiler) Compile(location string, doc any) (Validator, error) {
	compiler := jsonschema.NewCompiler()

	loader := jsonschema.SchemeURLLoader{
		"file": jsonschema.FileLoader{},
	}
	if c.remoteRefs {
		httpLoader := newHTTPLoader()
		loader["http"] = httpLoader
		loader["https"] = httpLoader
	}
	compiler.UseLoader(loader)

	if err := compiler.AddResource(location, doc); err != nil {
		return nil, errors.Wrapf(err, "failed to add schema resource %s", location)
	}

	sch, err := compiler.Compile(location)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile schema %s", location)
	}

	return santhoshValidator{schema: sch}, nil
}

type santhoshValidator struct {
	schema *jsonschema.Schema
}

func (v santhoshValidator) Validate(instance any) error {
	return v.schema.Validate(instance)
}
