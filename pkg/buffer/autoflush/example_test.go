package autoflush

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vnykmshr/bufflow/pkg/buffer/writer"
)

// Example demonstrates periodic flushing with a final drain on Close.
func Example() {
	var sink bytes.Buffer

	w := writer.New(&sink)
	af, _ := New(w, time.Minute)

	_, _ = af.Write([]byte("hello, "))
	_, _ = af.Write([]byte("world"))

	// Close stops the schedule and drains whatever is still buffered
	_ = af.Close()

	fmt.Println(sink.String())

	// Output:
	// hello, world
}

// Example_schedule demonstrates a cron-expression schedule with callbacks.
func Example_schedule() {
	var sink bytes.Buffer

	w := writer.New(&sink)
	config := Config{
		Schedule: "@every 1h",
		OnFlush: func(n int) {
			fmt.Printf("flushed %d bytes\n", n)
		},
	}

	af, _ := NewWithConfig(w, config)
	_, _ = af.Write([]byte("batched"))
	_ = af.Close()

	fmt.Printf("delivered: %q\n", sink.String())

	// Output:
	// delivered: "batched"
}
