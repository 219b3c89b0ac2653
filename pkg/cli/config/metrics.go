package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

// Metrics holds CLI flags for the Prometheus textfile output
type Metrics struct {
	file string
}

// Flags returns CLI flags for metrics configuration
func (x *Metrics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "metrics-file",
			Usage:       "Write Prometheus metrics in text format to this path when the command finishes",
			Sources:     cli.EnvVars("HYPERDASHI_METRICS_FILE"),
			Destination: &x.file,
		},
	}
}

// Configure returns a collector and a flush function that writes it to the
// configured file. Without a file, the collector is nil and flush is a no-op.
func (x *Metrics) Configure() (*metrics.Collector, func() error) {
	if x.file == "" {
		return nil, func() error { return nil }
	}

	collector := metrics.New()
	return collector, func() error {
		if err := collector.WriteToTextfile(x.file); err != nil {
			return goerr.Wrap(err, "failed to write metrics file", goerr.V(ConfigPathKey, x.file))
		}
		return nil
	}
}
