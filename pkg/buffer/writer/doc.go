/*
Package writer provides a large-capacity buffered writer for Go applications.

Writer accumulates data in memory and forwards it to the underlying sink only
when an explicit flush is requested or when a write would bring the buffered
total to the capacity threshold (1MB by default). For workloads that issue
many small writes, this collapses thousands of syscalls into a handful.

# Quick Start

	file, _ := os.Create("output.dat")
	w := writer.New(file)

	for _, chunk := range chunks {
		w.Write(chunk) // in-memory, no syscall
	}
	w.FlushAll() // deliver everything

# Buffering Policy

A write that keeps the buffered total below the capacity threshold is simply
appended. A write that would reach or exceed the threshold first forwards the
existing buffer to the sink in one call, then stores the new chunk as the
sole buffer content. Chunks are never split: every successful Write reports
full acceptance, and a single chunk larger than the capacity is still taken
whole. Capacity is a flush trigger, not a hard cap.

# Flush Semantics

Flush issues exactly one sink write with the current buffer contents and
leaves the buffer untouched, so a retry after an error resends the same
bytes. It makes no attempt to recover from a short write. FlushAll is the
hardened variant: it loops until every buffered byte is delivered, returns
io.ErrNoProgress if the sink accepts nothing, and empties the buffer on
success.

# Releasing the Writer

A Writer discarded with data still buffered loses that data; the final flush
is the caller's obligation. NewWriteCloser wraps a closeable sink so that
Close drains the buffer before closing:

	wc := writer.NewWriteCloser(file)
	defer wc.Close() // FlushAll, then file.Close

# Errors

Sink errors are propagated unchanged with no retries or classification.
After a failed Write the buffer holds its pre-call content and the identical
call may be retried. After a failed Flush the buffer is unmodified and Flush
is safe to retry. Constructors validate their configuration and return
*errors.ValidationError values.

# Monitoring

NewWithMetrics and NewSizeWithMetricsConfig wrap the writer with Prometheus
instrumentation (see pkg/metrics): write and byte counters, flushes by kind,
flush errors, and a buffered-bytes gauge.

# Concurrency

Writer is single-threaded: no locking, no background goroutines. Callers
sharing one instance must serialize access, or use pkg/buffer/autoflush
which wraps a Writer behind a mutex with periodic flushing.
*/
package writer
