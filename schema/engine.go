// Package schema compiles JSON Schema documents into reusable validators.
//
// The JSON Schema semantics are delegated entirely to third-party engines; this package only
// adapts them to a common Compiler/Validator shape.
package schema

import (
	"fmt"
	"sort"
)

// Validator is a compiled schema. Validate returns nil when instance conforms.
// A Validator is never mutated after compilation and may be reused for any number of instances.
type Validator interface {
	Validate(instance any) error
}

// Compiler turns a parsed schema document into a Validator. location is the file path the
// document was read from; engines use it as the base for resolving relative $refs.
type Compiler interface {
	Compile(location string, doc any) (Validator, error)
}

type Engine string

const (
	EngineSanthosh     Engine = "santhosh"
	EngineGoJSONSchema Engine = "gojsonschema"
)

const DefaultEngine = EngineSanthosh

func Engines() []Engine {
	return []Engine{EngineSanthosh, EngineGoJSONSchema}
}

type options struct {
	remoteRefs bool
}

// Option configures NewCompiler.
type Option func(*options)

// WithRemoteRefs allows $ref to http and https URLs.
func WithRemoteRefs() Option {
	return func(o *options) { o.remoteRefs = true }
}

// NewCompiler returns the Compiler backed by engine.
func NewCompiler(engine Engine, opts ...Option) (Compiler, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch engine {
	case EngineSanthosh, "":
		return &santhoshCompiler{remoteRefs: o.remoteRefs}, nil
	case EngineGoJSONSchema:
		return &goJSONSchemaCompiler{remoteRefs: o.remoteRefs}, nil
	default:
		names := make([]string, 0, len(Engines()))
		for _, e := range Engines() {
			names = append(names, string(e))
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown schema engine %q (available: %v)", engine, names)
	}
}
