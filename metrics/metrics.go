// Package metrics exposes the stack's runtime counters and gauges via
// the default Prometheus registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PDUsDropped counts primitives the router dropped because their
	// dest had no registered entity, or an entity dropped because the
	// PDU-type prefix was invalid or truncated. A PDU that fails to parse
	// after a valid type prefix is logged by its entity but not counted.
	PDUsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tetra_bluestation",
		Name:      "pdus_dropped_total",
		Help:      "Number of primitives dropped: unknown destination or invalid PDU-type prefix.",
	})

	// PDUsUnimplemented counts PDU-type dispatches that hit a
	// structured "unimplemented" stub handler.
	PDUsUnimplemented = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tetra_bluestation",
		Name:      "pdus_unimplemented_total",
		Help:      "Number of PDU-type dispatches that hit an unimplemented handler stub.",
	}, []string{"entity", "pdu_type"})

	// QueueDepth reports the message router's queue length, sampled at
	// the end of each delivery fixed point.
	QueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tetra_bluestation",
		Name:      "router_queue_depth",
		Help:      "Number of primitives currently queued for delivery.",
	})

	// TicksProcessed counts completed router ticks.
	TicksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tetra_bluestation",
		Name:      "ticks_processed_total",
		Help:      "Number of tick_start/delivery/tick_end cycles completed.",
	})
)

func init() {
	prometheus.MustRegister(PDUsDropped, PDUsUnimplemented, QueueDepth, TicksProcessed)
}

// UnimplementedLog records an unimplemented-PDU-type dispatch for the
// given entity and PDU type name. Entities call this alongside their
// structured log line (spec.md §4.4, §7): logging is handled at the call
// site via logrus so the message carries entity-specific fields; this
// only drives the counter.
func UnimplementedLog(entity, pduType string) {
	PDUsUnimplemented.WithLabelValues(entity, pduType).Inc()
}
