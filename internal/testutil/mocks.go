package testutil

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

// MockWriter is a test sink that records every write call so tests can
// assert on flush boundaries, not just final content. It can simulate
// delays, errors, and short writes.
type MockWriter struct {
	buf         *bytes.Buffer
	writes      [][]byte
	mu          sync.Mutex
	writeDelay  time.Duration
	errorOnNth  int
	writeCount  int
	shortWrite  int
	shouldError bool
	err         error
}

// NewMockWriter creates a new MockWriter.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		buf: &bytes.Buffer{},
	}
}

// Write implements io.Writer interface with configurable behavior.
func (mw *MockWriter) Write(p []byte) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.writeCount++

	if mw.writeDelay > 0 {
		time.Sleep(mw.writeDelay)
	}

	if mw.shouldError {
		return 0, mw.err
	}

	if mw.errorOnNth > 0 && mw.writeCount == mw.errorOnNth {
		return 0, errors.New("simulated error")
	}

	if mw.shortWrite > 0 && len(p) > mw.shortWrite {
		p = p[:mw.shortWrite]
	}

	call := make([]byte, len(p))
	copy(call, p)
	mw.writes = append(mw.writes, call)

	return mw.buf.Write(p)
}

// String returns the current buffer contents.
func (mw *MockWriter) String() string {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.buf.String()
}

// Bytes returns a copy of the current buffer contents.
func (mw *MockWriter) Bytes() []byte {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	out := make([]byte, mw.buf.Len())
	copy(out, mw.buf.Bytes())
	return out
}

// Len returns the current buffer length.
func (mw *MockWriter) Len() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.buf.Len()
}

// WriteCount returns the number of Write calls.
func (mw *MockWriter) WriteCount() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.writeCount
}

// Writes returns the payload of each successful Write call in order.
func (mw *MockWriter) Writes() [][]byte {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	out := make([][]byte, len(mw.writes))
	copy(out, mw.writes)
	return out
}

// SetWriteDelay configures a delay for each write operation.
func (mw *MockWriter) SetWriteDelay(delay time.Duration) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.writeDelay = delay
}

// SetErrorOnNth configures the writer to error on the nth write.
func (mw *MockWriter) SetErrorOnNth(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.errorOnNth = n
}

// SetAlwaysError configures the writer to always return the given error.
func (mw *MockWriter) SetAlwaysError(err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.shouldError = true
	mw.err = err
}

// SetShortWrite configures the writer to accept at most n bytes per call,
// reporting the truncated count with a nil error.
func (mw *MockWriter) SetShortWrite(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.shortWrite = n
}

// Reset clears the buffer and resets counters.
func (mw *MockWriter) Reset() {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.buf.Reset()
	mw.writes = nil
	mw.writeCount = 0
	mw.shouldError = false
	mw.errorOnNth = 0
	mw.shortWrite = 0
	mw.writeDelay = 0
	mw.err = nil
}
