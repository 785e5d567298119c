/*
Package bufflow provides buffered writing primitives for Go applications.

Buffered Writing (pkg/buffer):
  - writer: Large-capacity buffered writer with flush-before-overflow policy
  - autoflush: Periodic background flushing for buffered writers

Sinks (pkg/sink):
  - redis: Redis-backed byte sink for buffered network output

Example usage:

	import (
		"os"

		"github.com/vnykmshr/bufflow/pkg/buffer/writer"
	)

	file, _ := os.Create("output.dat")
	w := writer.New(file) // 1MB buffer by default
	defer w.FlushAll()

	for _, chunk := range chunks {
		w.Write(chunk) // in-memory until overflow or an explicit flush
	}
*/
package bufflow
