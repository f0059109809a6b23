package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Spok95/stone-inventory/internal/errs"
)

// Observer counts operations by outcome and failures by kind.
type Observer struct {
	ops    *prometheus.CounterVec
	errors *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "operations_total",
			Help:      "Inventory operations by name and result.",
		}, []string{"op", "result"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "errors_total",
			Help:      "Failed inventory operations by error kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(o.ops, o.errors)
	return o
}

func (o *Observer) BeforeValidate(context.Context, string, ...any) {}

func (o *Observer) AfterMutation(_ context.Context, op string, _ string, _ ...any) {
	o.ops.WithLabelValues(op, "ok").Inc()
}

func (o *Observer) OnError(_ context.Context, op string, err error) {
	o.ops.WithLabelValues(op, "error").Inc()
	o.errors.WithLabelValues(string(errs.KindOf(err))).Inc()
}
