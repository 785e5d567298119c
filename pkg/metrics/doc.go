// Package metrics provides Prometheus instrumentation for bufflow components.
//
// This package enables monitoring and observability for bufflow's buffered
// writers, sinks, and periodic flushers through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Buffered writers (writes, bytes accepted, flushes by kind, flush errors, buffer fill)
//   - Sinks (forwarded writes, forwarded bytes, sink errors)
//   - Autoflush (scheduled runs, failed runs)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Buffered writer with metrics
//	w := writer.NewWithMetrics(file, "request_log")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	w := writer.NewSizeWithMetricsConfig(file, 1<<20, "request_log", config)
//
// # Metric Naming
//
// Metrics use the "bufflow" namespace with per-component subsystems, for
// example bufflow_writer_flushes_total{writer_name="request_log",kind="overflow"}.
// Config.Namespace replaces the namespace and Config.Labels attaches
// constant labels to every metric.
package metrics
