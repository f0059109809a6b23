package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/stone-inventory/internal/errs"
	"github.com/Spok95/stone-inventory/internal/infra/metrics"
)

func TestObserverCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := prometheus.NewRegistry()
	obs := metrics.New(reg)

	obs.BeforeValidate(ctx, "slab.add")
	obs.AfterMutation(ctx, "slab.add", "id-1")
	obs.AfterMutation(ctx, "slab.add", "id-2")
	obs.OnError(ctx, "slab.get", errs.NotFound("Slab", "x"))
	obs.OnError(ctx, "sample.add", errs.Invalid("Image is empty"))
	obs.OnError(ctx, "sample.add", errors.New("connection refused"))

	cases := []struct {
		op, result string
		want       float64
	}{
		{"slab.add", "ok", 2},
		{"slab.get", "error", 1},
		{"sample.add", "error", 2},
	}
	for _, tc := range cases {
		got, err := gather(reg, "inventory_operations_total", map[string]string{"op": tc.op, "result": tc.result})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s/%s", tc.op, tc.result)
	}

	n, err := testutil.GatherAndCount(reg, "inventory_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "one series per kind")
}

func gather(reg *prometheus.Registry, name string, labels map[string]string) (float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return 0, err
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue(), nil
		}
	}
	return 0, nil
}
