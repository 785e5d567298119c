/*
Package sink provides byte sinks for buffered writers.

Currently one implementation is offered:

  - redis: appends each write to a Redis string key via APPEND

Sinks implement io.Writer, so any of them can sit behind a
buffer/writer.Writer:

	w := writer.New(sink)
*/
package sink
