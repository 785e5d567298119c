// Package autoflush drains a buffered writer on a schedule.
//
// A plain writer.Writer holds data until an overflow or an explicit flush,
// which suits batch workloads but lets low-volume streams go stale. An
// AutoFlusher wraps the writer behind a mutex and runs a cron-driven job
// that delivers whatever has accumulated.
//
// # Quick Start
//
//	w := writer.New(conn)
//	af, _ := autoflush.New(w, 5*time.Second)
//	defer af.Close() // stops the schedule and drains the buffer
//
//	af.Write(payload)
//
// # Scheduling
//
// Schedules use the robfig/cron expression format:
//
//	config := autoflush.Config{
//		Schedule: "@every 500ms", // rounded up to 1s by cron
//		OnError: func(err error) {
//			log.Printf("flush failed: %v", err)
//		},
//	}
//	af, _ := autoflush.NewWithConfig(w, config)
//
// Standard five-field expressions work too, e.g. "*/5 * * * *" to flush
// every five minutes.
//
// # Concurrency
//
// AutoFlusher is safe for concurrent use. The wrapped writer stays
// single-threaded underneath the mutex; do not use it directly while the
// AutoFlusher owns it.
//
// # Delivery
//
// Scheduled flushes and Close use the writer's hardened drain, so short
// sink writes are retried until every buffered byte is delivered.
package autoflush
