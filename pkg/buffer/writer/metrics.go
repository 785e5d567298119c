package writer

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/bufflow/pkg/metrics"
)

// Flush kinds reported by the writer metrics.
const (
	flushKindExplicit = "explicit"
	flushKindOverflow = "overflow"
	flushKindDrain    = "drain"
)

// MetricsWriter wraps a Writer with Prometheus metrics collection.
type MetricsWriter struct {
	writer   *Writer
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a default-capacity buffered writer with metrics enabled.
func NewWithMetrics(sink io.Writer, name string) *MetricsWriter {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	mw, _ := NewSizeWithMetricsConfig(sink, DefaultCapacity, name, config)
	return mw
}

// NewSizeWithMetricsConfig creates a buffered writer with custom capacity and metrics.
func NewSizeWithMetricsConfig(sink io.Writer, capacity int, name string, metricsConfig metrics.Config) (*MetricsWriter, error) {
	base, err := NewSize(sink, capacity)
	if err != nil {
		return nil, err
	}

	if !metricsConfig.Enabled {
		return &MetricsWriter{writer: base, name: name}, nil
	}

	mw := &MetricsWriter{
		writer:   base,
		name:     name,
		registry: metrics.FromConfig(metricsConfig),
		enabled:  true,
	}
	mw.registry.WriterCapacityBytes.WithLabelValues(name).Set(float64(capacity))
	return mw, nil
}

// Len returns the number of bytes currently buffered.
func (mw *MetricsWriter) Len() int {
	return mw.writer.Len()
}

// Capacity returns the configured capacity threshold.
func (mw *MetricsWriter) Capacity() int {
	return mw.writer.Capacity()
}

// Write buffers p, recording write counts, accepted bytes, and any
// overflow flush the call triggers.
func (mw *MetricsWriter) Write(p []byte) (int, error) {
	overflow := mw.writer.Len()+len(p) >= mw.writer.Capacity()

	n, err := mw.writer.Write(p)

	if mw.enabled {
		if err != nil {
			mw.registry.WriterFlushErrors.WithLabelValues(mw.name, flushKindOverflow).Inc()
		} else {
			mw.registry.WriterWrites.WithLabelValues(mw.name).Inc()
			mw.registry.WriterWrittenBytes.WithLabelValues(mw.name).Add(float64(n))
			if overflow {
				mw.registry.WriterFlushes.WithLabelValues(mw.name, flushKindOverflow).Inc()
			}
		}
		mw.registry.WriterBufferedBytes.WithLabelValues(mw.name).Set(float64(mw.writer.Len()))
	}

	return n, err
}

// Flush forwards the buffered bytes in one pass-through write call.
func (mw *MetricsWriter) Flush() error {
	err := mw.writer.Flush()

	if mw.enabled {
		if err != nil {
			mw.registry.WriterFlushErrors.WithLabelValues(mw.name, flushKindExplicit).Inc()
		} else {
			mw.registry.WriterFlushes.WithLabelValues(mw.name, flushKindExplicit).Inc()
		}
	}

	return err
}

// FlushAll drains the buffer completely, then updates the buffer gauge.
func (mw *MetricsWriter) FlushAll() error {
	err := mw.writer.FlushAll()

	if mw.enabled {
		if err != nil {
			mw.registry.WriterFlushErrors.WithLabelValues(mw.name, flushKindDrain).Inc()
		} else {
			mw.registry.WriterFlushes.WithLabelValues(mw.name, flushKindDrain).Inc()
		}
		mw.registry.WriterBufferedBytes.WithLabelValues(mw.name).Set(float64(mw.writer.Len()))
	}

	return err
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mw *MetricsWriter) MetricsEnabled() bool {
	return mw.enabled
}
