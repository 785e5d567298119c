package autoflush

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/bufflow/pkg/buffer/writer"
	bferrors "github.com/vnykmshr/bufflow/pkg/common/errors"
	"github.com/vnykmshr/bufflow/pkg/common/validation"
	"github.com/vnykmshr/bufflow/pkg/metrics"
)

// Config holds configuration options for AutoFlusher.
type Config struct {
	// Schedule is a cron expression driving the periodic flush.
	// Supports the robfig/cron format, including "@every 5s" and
	// standard five-field expressions. Default: "@every 1s".
	Schedule string

	// OnError is called when a scheduled flush fails.
	OnError func(error)

	// OnFlush is called after each successful scheduled flush with the
	// number of bytes delivered.
	OnFlush func(flushed int)
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Schedule: "@every 1s",
	}
}

// AutoFlusher wraps a buffered writer behind a mutex and drains it on a
// schedule, so buffered data cannot sit in memory indefinitely between
// explicit flushes. The wrapped writer must not be used directly while
// the AutoFlusher owns it.
type AutoFlusher struct {
	mu     sync.Mutex
	writer *writer.Writer
	cron   *cron.Cron
	config Config
	closed bool

	name     string
	registry *metrics.Registry
}

// New creates an AutoFlusher that drains w every interval. Intervals are
// rounded up to one second by the cron scheduler.
func New(w *writer.Writer, interval time.Duration) (*AutoFlusher, error) {
	if err := validation.ValidatePositiveDuration("autoflush", "interval", interval); err != nil {
		return nil, err
	}
	config := DefaultConfig()
	config.Schedule = fmt.Sprintf("@every %s", interval)
	return NewWithConfig(w, config)
}

// NewWithConfig creates an AutoFlusher with the specified configuration.
func NewWithConfig(w *writer.Writer, config Config) (*AutoFlusher, error) {
	if w == nil {
		return nil, bferrors.NewValidationError("autoflush", "writer", nil, "cannot be nil").
			WithHint("provide a valid writer")
	}
	if config.Schedule == "" {
		config.Schedule = DefaultConfig().Schedule
	}

	af := &AutoFlusher{
		writer: w,
		cron:   cron.New(),
		config: config,
	}

	if _, err := af.cron.AddFunc(config.Schedule, af.run); err != nil {
		return nil, bferrors.NewValidationError("autoflush", "schedule", config.Schedule, "not a valid cron expression").
			WithHint(`use "@every <duration>" or a five-field cron expression`)
	}

	af.cron.Start()
	return af, nil
}

// NewWithMetrics creates an AutoFlusher with Prometheus metrics enabled.
func NewWithMetrics(w *writer.Writer, interval time.Duration, name string) (*AutoFlusher, error) {
	af, err := New(w, interval)
	if err != nil {
		return nil, err
	}

	// Use a separate registry for each metrics-enabled component to avoid conflicts
	af.name = name
	af.registry = metrics.NewRegistry(prometheus.NewRegistry())
	return af, nil
}

// Write buffers p through the wrapped writer. Returns ErrClosed after Close.
func (af *AutoFlusher) Write(p []byte) (int, error) {
	af.mu.Lock()
	defer af.mu.Unlock()

	if af.closed {
		return 0, bferrors.ErrClosed
	}
	return af.writer.Write(p)
}

// Flush drains the wrapped writer immediately, independent of the schedule.
func (af *AutoFlusher) Flush() error {
	af.mu.Lock()
	defer af.mu.Unlock()

	if af.closed {
		return bferrors.ErrClosed
	}
	return af.writer.FlushAll()
}

// Len returns the number of bytes currently buffered.
func (af *AutoFlusher) Len() int {
	af.mu.Lock()
	defer af.mu.Unlock()
	return af.writer.Len()
}

// Close stops the schedule, waits for a running flush to finish, and
// performs a final drain. Subsequent writes fail with ErrClosed.
func (af *AutoFlusher) Close() error {
	af.mu.Lock()
	if af.closed {
		af.mu.Unlock()
		return nil
	}
	af.closed = true
	af.mu.Unlock()

	ctx := af.cron.Stop()
	<-ctx.Done()

	af.mu.Lock()
	defer af.mu.Unlock()
	return af.writer.FlushAll()
}

// run is the scheduled flush job.
func (af *AutoFlusher) run() {
	af.mu.Lock()
	if af.closed {
		af.mu.Unlock()
		return
	}
	buffered := af.writer.Len()
	err := af.writer.FlushAll()
	af.mu.Unlock()

	if af.registry != nil {
		af.registry.AutoflushRuns.WithLabelValues(af.name).Inc()
		if err != nil {
			af.registry.AutoflushErrors.WithLabelValues(af.name).Inc()
		}
	}

	if err != nil {
		if af.config.OnError != nil {
			af.config.OnError(err)
		}
		return
	}
	if af.config.OnFlush != nil {
		af.config.OnFlush(buffered)
	}
}
