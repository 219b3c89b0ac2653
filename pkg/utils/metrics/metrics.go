package metrics

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
)

const namespace = "hyperdashi"

// Collector counts conflict scans and color pattern generations. A nil
// *Collector is valid and records nothing.
type Collector struct {
	registry           *prometheus.Registry
	scans              prometheus.Counter
	conflicts          prometheus.Counter
	generationAttempts prometheus.Counter
	generations        *prometheus.CounterVec
}

// New creates a Collector with its own registry
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cable_pattern",
			Name:      "scans_total",
			Help:      "Number of conflict scans run against the item collection.",
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cable_pattern",
			Name:      "conflicts_total",
			Help:      "Number of conflicting items reported by conflict scans.",
		}),
		generationAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cable_pattern",
			Name:      "generation_attempts_total",
			Help:      "Number of sampled color patterns checked during generation.",
		}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cable_pattern",
			Name:      "generations_total",
			Help:      "Number of color pattern generations by outcome.",
		}, []string{"status"}),
	}

	c.registry.MustRegister(c.scans, c.conflicts, c.generationAttempts, c.generations)
	return c
}

// Registry returns the registry holding the collectors
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ObserveScan records one conflict scan and its result
func (c *Collector) ObserveScan(result model.ConflictResult) {
	if c == nil {
		return
	}
	c.scans.Inc()
	c.conflicts.Add(float64(len(result)))
}

// ObserveGeneration records one generation outcome
func (c *Collector) ObserveGeneration(gen *model.Generation) {
	if c == nil || gen == nil {
		return
	}
	c.generationAttempts.Add(float64(gen.Attempts))
	c.generations.WithLabelValues(gen.Status.String()).Inc()
}

// WriteToTextfile writes all collected metrics in the text exposition format
func (c *Collector) WriteToTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return goerr.Wrap(err, "failed to write metrics", goerr.V("path", path))
	}
	return nil
}
