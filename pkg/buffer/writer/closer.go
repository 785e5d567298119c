package writer

import "io"

// WriteCloser couples a Writer with a closeable sink so that buffered data
// is drained automatically when the resource is released. Callers using a
// plain Writer must remember a final flush themselves; this wrapper folds
// that obligation into Close.
type WriteCloser struct {
	*Writer
	sink io.WriteCloser
}

var _ io.WriteCloser = (*WriteCloser)(nil)

// NewWriteCloser wraps sink with a default-capacity buffered writer.
func NewWriteCloser(sink io.WriteCloser) *WriteCloser {
	return &WriteCloser{
		Writer: New(sink),
		sink:   sink,
	}
}

// NewWriteCloserSize wraps sink with an explicit capacity threshold.
func NewWriteCloserSize(sink io.WriteCloser, capacity int) (*WriteCloser, error) {
	w, err := NewSize(sink, capacity)
	if err != nil {
		return nil, err
	}
	return &WriteCloser{
		Writer: w,
		sink:   sink,
	}, nil
}

// Close drains the buffer via FlushAll and closes the underlying sink.
// The sink is closed even when the drain fails; the drain error takes
// precedence over the close error.
func (wc *WriteCloser) Close() error {
	flushErr := wc.FlushAll()
	closeErr := wc.sink.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
