package suite

// Result is the run-wide aggregate. Counts only ever grow.
type Result struct {
	Passed   int
	Failed   int
	Messages []string

	// Suites records one entry per suite that ran, in run order.
	Suites []SuiteResult
	// Skipped lists the schema names of suites that were skipped.
	Skipped []string
}

// SuiteResult is the outcome of one suite.
type SuiteResult struct {
	Suite    Suite
	Passed   int
	Failed   int
	Messages []string
}

func (r *SuiteResult) pass() {
	r.Passed++
}

func (r *SuiteResult) fail(message string) {
	r.Failed++
	r.Messages = append(r.Messages, message)
}

// merge credits a completed suite to the aggregate.
func (r *Result) merge(s SuiteResult) {
	r.Passed += s.Passed
	r.Failed += s.Failed
	r.Messages = append(r.Messages, s.Messages...)
	r.Suites = append(r.Suites, s)
}

func (r *Result) skip(s Suite) {
	r.Skipped = append(r.Skipped, s.Schema)
}

// OK reports whether no vector failed.
func (r *Result) OK() bool {
	return r.Failed == 0
}
