/*
Package buffer provides write-coalescing primitives for Go applications.

This package offers two buffering components:

  - writer: Large-capacity buffered writer with a flush-before-overflow policy
  - autoflush: Scheduled draining for buffered writers

The writer accumulates small writes in memory and forwards them to the
underlying sink in large chunks:

	w := writer.New(sink) // 1MB threshold
	w.Write(small)        // in-memory
	w.FlushAll()          // one sink write

The autoflush wrapper bounds how long data may sit buffered:

	af, _ := autoflush.New(w, 5*time.Second)
	defer af.Close()

The writer is synchronous and single-threaded; autoflush adds the locking
and the background schedule for callers that need them.
*/
package buffer
