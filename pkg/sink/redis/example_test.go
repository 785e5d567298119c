package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vnykmshr/bufflow/pkg/buffer/writer"
)

// Example_bufferedAppends demonstrates coalescing many small appends into
// a single Redis round trip.
func Example_bufferedAppends() {
	// Create a Redis client (in real usage, use your Redis connection)
	rdb := goredis.NewClient(&goredis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use a test database
	})
	defer func() { _ = rdb.Close() }()

	// Test Redis connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Println("Redis not available, skipping example")
		return
	}

	sink, err := New(Config{Redis: rdb, Key: "bufflow:example"})
	if err != nil {
		fmt.Println("sink error:", err)
		return
	}
	defer func() { _ = sink.Clear(ctx) }()

	// Hundreds of writes, one APPEND
	w := writer.New(sink)
	for i := 0; i < 100; i++ {
		_, _ = w.Write([]byte("event\n"))
	}
	_ = w.FlushAll()

	n, _ := sink.Len(ctx)
	fmt.Printf("accumulated %d bytes\n", n)

	// Output varies with server state; expected: accumulated 600 bytes
}
