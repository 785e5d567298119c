/*
Package redis provides a Redis-backed byte sink for buffered writers.

Each Write issues one APPEND command against a configured string key, so
the sink pays a network round trip per call. Putting a writer.Writer in
front of it turns many small appends into a few large ones:

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	sink, _ := redissink.New(redissink.Config{Redis: rdb, Key: "events"})

	w := writer.New(sink)
	for _, e := range events {
		w.Write(e) // in-memory
	}
	w.FlushAll() // one APPEND

The Len, Bytes, and Clear helpers read back and reset the accumulated
key, which is mainly useful in tests and examples.

NewWithMetrics and NewWithMetricsConfig create sinks that count forwarded
writes, forwarded bytes, and errors under the bufflow_sink subsystem.

The sink does not manage the client's lifecycle; closing the Redis client
remains the caller's responsibility.
*/
package redis
