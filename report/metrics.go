package report

import (
	"github.com/0xHoneyJar/loa-hounfour/suite"
	"github.com/friendsofgo/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hounfour"

type metrics struct {
	registry      *prometheus.Registry
	passed        *prometheus.CounterVec
	failed        *prometheus.CounterVec
	suitesSkipped prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		passed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vectors_passed_total",
			Help:      "Vectors whose validation outcome matched their bucket",
		}, []string{"schema"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vectors_failed_total",
			Help:      "Vectors whose validation outcome disagreed with their bucket",
		}, []string{"schema"}),
		suitesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suites_skipped_total",
			Help:      "Suites skipped because an artifact was missing or the suite was out of contract",
		}),
	}
	m.registry.MustRegister(m.passed, m.failed, m.suitesSkipped)
	return m
}

func (m *metrics) observe(result *suite.Result) {
	for _, s := range result.Suites {
		m.passed.WithLabelValues(s.Suite.Schema).Add(float64(s.Passed))
		m.failed.WithLabelValues(s.Suite.Schema).Add(float64(s.Failed))
	}
	m.suitesSkipped.Add(float64(len(result.Skipped)))
}

// WriteMetrics writes the run counters to path in the Prometheus text exposition format.
func WriteMetrics(path string, result *suite.Result) error {
	m := newMetrics()
	m.observe(result)

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics %s", path)
	}
	return nil
}
