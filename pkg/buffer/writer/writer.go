package writer

import (
	"io"

	"github.com/vnykmshr/bufflow/pkg/common/validation"
)

// DefaultCapacity is the buffering threshold in bytes. Once a write would
// bring the buffered total to this size, the existing buffer is forwarded
// to the sink before the new chunk is stored.
const DefaultCapacity = 1 << 20 // 1,048,576 bytes

// Writer wraps a sink and coalesces small writes into larger ones,
// reducing the number of underlying write operations. It is not safe for
// concurrent use; callers sharing a Writer must serialize access (see
// package autoflush for a synchronized wrapper).
type Writer struct {
	buf      []byte
	sink     io.Writer
	capacity int
}

// New creates a Writer with the default 1MB capacity. It takes ownership
// of sink for the Writer's lifetime and performs no I/O.
func New(sink io.Writer) *Writer {
	return &Writer{
		sink:     sink,
		capacity: DefaultCapacity,
	}
}

// NewSize creates a Writer with an explicit capacity threshold.
// The capacity must be positive and the sink non-nil.
func NewSize(sink io.Writer, capacity int) (*Writer, error) {
	if err := validation.ValidateNotNil("writer", "sink", sink); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositive("writer", "capacity", capacity); err != nil {
		return nil, err
	}
	return &Writer{
		sink:     sink,
		capacity: capacity,
	}, nil
}

// Len returns the number of bytes currently held in the buffer and not yet
// forwarded to the sink.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Capacity returns the configured capacity threshold.
func (w *Writer) Capacity() int {
	return w.capacity
}

// Write buffers p in memory. The whole chunk is always accepted as a unit:
// a successful call returns len(p), never a short count.
//
// If storing p would bring the buffered total to the capacity threshold,
// the current buffer is first forwarded to the sink in one write call and
// then replaced by a copy of p. A chunk of capacity bytes or more is still
// accepted whole after that flush; the threshold is advisory, not a hard
// cap on a single chunk.
//
// If the overflow flush fails, the error is returned, p is not stored, and
// the previously buffered bytes remain in place, so retrying the identical
// call is safe.
func (w *Writer) Write(p []byte) (int, error) {
	if len(w.buf)+len(p) < w.capacity {
		w.buf = append(w.buf, p...)
		return len(p), nil
	}

	if err := w.Flush(); err != nil {
		return 0, err
	}

	w.buf = append(w.buf[:0], p...)
	return len(p), nil
}

// Flush forwards the current buffer contents to the sink in exactly one
// write call and reports its error. The buffer is not cleared: Flush is a
// pass-through snapshot of the buffered bytes, and a retry after an error
// resends the same content. A sink that performs a short write loses the
// remainder silently; use FlushAll when complete delivery matters.
func (w *Writer) Flush() error {
	_, err := w.sink.Write(w.buf)
	return err
}

// FlushAll forwards the buffered bytes to the sink, issuing as many write
// calls as needed until every byte is delivered, then empties the buffer.
// A write that reports neither progress nor an error returns
// io.ErrNoProgress. On error the undelivered remainder stays buffered.
func (w *Writer) FlushAll() error {
	for len(w.buf) > 0 {
		n, err := w.sink.Write(w.buf)
		if n > 0 {
			w.buf = w.buf[n:]
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrNoProgress
		}
	}
	return nil
}

// Reset discards any buffered data and switches output to sink, allowing
// the Writer to be reused.
func (w *Writer) Reset(sink io.Writer) {
	w.sink = sink
	w.buf = w.buf[:0]
}
