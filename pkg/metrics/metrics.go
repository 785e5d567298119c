// Package metrics provides Prometheus instrumentation for bufflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is the metric namespace used when none is configured.
const DefaultNamespace = "bufflow"

// Registry holds all metric instances for bufflow components.
type Registry struct {
	// Buffered Writer Metrics
	WriterWrites        *prometheus.CounterVec
	WriterWrittenBytes  *prometheus.CounterVec
	WriterFlushes       *prometheus.CounterVec
	WriterFlushErrors   *prometheus.CounterVec
	WriterBufferedBytes *prometheus.GaugeVec
	WriterCapacityBytes *prometheus.GaugeVec

	// Sink Metrics
	SinkWrites       *prometheus.CounterVec
	SinkWrittenBytes *prometheus.CounterVec
	SinkErrors       *prometheus.CounterVec

	// Autoflush Metrics
	AutoflushRuns   *prometheus.CounterVec
	AutoflushErrors *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by bufflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// FromConfig resolves a Config into a Registry. A nil registerer and the
// Prometheus default registerer resolve to the shared DefaultRegistry when
// no namespace or label overrides are requested: DefaultRegistry's
// collectors are already registered there, and registering a second set
// of the same families would panic.
func FromConfig(config Config) *Registry {
	overridden := (config.Namespace != "" && config.Namespace != DefaultNamespace) ||
		len(config.Labels) > 0
	if !overridden && (config.Registry == nil || config.Registry == prometheus.DefaultRegisterer) {
		return DefaultRegistry
	}

	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return NewRegistryWithOptions(reg, config.Namespace, config.Labels)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithOptions(reg, DefaultNamespace, nil)
}

// NewRegistryWithOptions creates a metrics registry under a custom namespace,
// with the given constant labels applied to every metric. An empty namespace
// falls back to DefaultNamespace.
func NewRegistryWithOptions(reg prometheus.Registerer, namespace string, labels prometheus.Labels) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if len(labels) > 0 {
		reg = prometheus.WrapRegistererWith(labels, reg)
	}
	factory := promauto.With(reg)

	return &Registry{
		// Buffered Writer Metrics
		WriterWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "writer",
				Name:      "writes_total",
				Help:      "Total number of writes accepted by the buffered writer",
			},
			[]string{"writer_name"},
		),

		WriterWrittenBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "writer",
				Name:      "written_bytes_total",
				Help:      "Total number of bytes accepted by the buffered writer",
			},
			[]string{"writer_name"},
		),

		WriterFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "writer",
				Name:      "flushes_total",
				Help:      "Total number of flushes, by kind (explicit or overflow)",
			},
			[]string{"writer_name", "kind"},
		),

		WriterFlushErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "writer",
				Name:      "flush_errors_total",
				Help:      "Total number of flushes that failed with a sink error",
			},
			[]string{"writer_name", "kind"},
		),

		WriterBufferedBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "writer",
				Name:      "buffered_bytes",
				Help:      "Number of bytes currently held in the buffer",
			},
			[]string{"writer_name"},
		),

		WriterCapacityBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "writer",
				Name:      "capacity_bytes",
				Help:      "Configured capacity threshold of the buffered writer",
			},
			[]string{"writer_name"},
		),

		// Sink Metrics
		SinkWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "writes_total",
				Help:      "Total number of write calls forwarded to a sink",
			},
			[]string{"sink_type", "sink_name"},
		),

		SinkWrittenBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "written_bytes_total",
				Help:      "Total number of bytes forwarded to a sink",
			},
			[]string{"sink_type", "sink_name"},
		),

		SinkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "errors_total",
				Help:      "Total number of sink write errors",
			},
			[]string{"sink_type", "sink_name"},
		),

		// Autoflush Metrics
		AutoflushRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "autoflush",
				Name:      "runs_total",
				Help:      "Total number of scheduled flush runs",
			},
			[]string{"writer_name"},
		),

		AutoflushErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "autoflush",
				Name:      "errors_total",
				Help:      "Total number of scheduled flush runs that failed",
			},
			[]string{"writer_name"},
		),
	}
}
