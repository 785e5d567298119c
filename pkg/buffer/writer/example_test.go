package writer

import (
	"bytes"
	"fmt"
)

// Example demonstrates basic buffered writing.
func Example() {
	var sink bytes.Buffer

	w := New(&sink)

	for i := 0; i < 10; i++ {
		_, _ = w.Write([]byte{byte(i + 1)})
	}

	// Still buffered: nothing has reached the sink
	fmt.Printf("buffered: %d, sunk: %d\n", w.Len(), sink.Len())

	_ = w.FlushAll()
	fmt.Printf("buffered: %d, sunk: %d\n", w.Len(), sink.Len())

	// Output:
	// buffered: 10, sunk: 0
	// buffered: 0, sunk: 10
}

// Example_overflow demonstrates the flush-before-overflow policy with a
// small capacity.
func Example_overflow() {
	var sink bytes.Buffer

	w, _ := NewSize(&sink, 8)

	_, _ = w.Write([]byte("abcdef"))
	fmt.Printf("after 6 bytes: buffered=%d sunk=%d\n", w.Len(), sink.Len())

	// 6 + 3 >= 8: the prior bytes are forwarded, "ghi" becomes the buffer
	_, _ = w.Write([]byte("ghi"))
	fmt.Printf("after 3 more: buffered=%d sunk=%q\n", w.Len(), sink.String())

	// Output:
	// after 6 bytes: buffered=6 sunk=0
	// after 3 more: buffered=3 sunk="abcdef"
}

// Example_flush shows the pass-through flush, which leaves the buffer intact.
func Example_flush() {
	var sink bytes.Buffer

	w := New(&sink)
	_, _ = w.Write([]byte("snapshot"))

	_ = w.Flush()
	fmt.Printf("buffered=%d sunk=%q\n", w.Len(), sink.String())

	// Output:
	// buffered=8 sunk="snapshot"
}

// Example_writeCloser shows draining on release via the WriteCloser wrapper.
func Example_writeCloser() {
	sink := nopCloser{new(bytes.Buffer)}

	wc := NewWriteCloser(sink)
	_, _ = wc.Write([]byte("delivered on close"))
	_ = wc.Close()

	fmt.Println(sink.String())

	// Output:
	// delivered on close
}

type nopCloser struct {
	*bytes.Buffer
}

func (nopCloser) Close() error { return nil }
