package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/types"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/metrics"
)

func TestCollector(t *testing.T) {
	c := metrics.New()

	c.ObserveScan(model.ConflictResult{{ItemID: 1}, {ItemID: 2}})
	c.ObserveScan(model.ConflictResult{})
	c.ObserveGeneration(&model.Generation{Status: types.GenerationStatusFound, Attempts: 3})
	c.ObserveGeneration(&model.Generation{Status: types.GenerationStatusFallback, Attempts: 50})
	c.ObserveGeneration(nil)

	count, err := testutil.GatherAndCount(c.Registry())
	gt.NoError(t, err).Required()
	gt.Number(t, count).Equal(5)

	path := filepath.Join(t.TempDir(), "cable.prom")
	gt.NoError(t, c.WriteToTextfile(path)).Required()

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.String(t, string(data)).Contains("hyperdashi_cable_pattern_scans_total 2")
	gt.String(t, string(data)).Contains("hyperdashi_cable_pattern_conflicts_total 2")
	gt.String(t, string(data)).Contains("hyperdashi_cable_pattern_generation_attempts_total 53")
	gt.String(t, string(data)).Contains(`hyperdashi_cable_pattern_generations_total{status="FALLBACK"} 1`)
}

func TestNilCollector(t *testing.T) {
	var c *metrics.Collector
	c.ObserveScan(model.ConflictResult{{ItemID: 1}})
	c.ObserveGeneration(&model.Generation{})
	gt.Value(t, c.Registry()).Nil()
	gt.NoError(t, c.WriteToTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}
