package static

// these variables are baked in during compilation
var (
	Version = "v0.0.0"
)

var (
	RunnerName = "loa-hounfour Golden Vector Runner (Go)"
)

// RootLevels is how many directories the runner binary sits below the project root
// (vectors/runners/go).
const RootLevels = 3

const (
	SchemasDir = "schemas"
	VectorsDir = "vectors"

	SchemaFileSuffix = ".schema.json"
)
