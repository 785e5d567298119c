package benchmark

import (
	"fmt"
	"testing"

	"github.com/vnykmshr/bufflow/pkg/buffer/writer"
)

// countingSink models a sink where each write call has a fixed cost.
type countingSink struct {
	calls int
	bytes int
}

func (s *countingSink) Write(p []byte) (int, error) {
	s.calls++
	s.bytes += len(p)
	return len(p), nil
}

func sizeLabel(size int) string {
	if size >= 1024 {
		return fmt.Sprintf("%dKB", size/1024)
	}
	return fmt.Sprintf("%dB", size)
}

// BenchmarkDirectWrites measures writing straight to the sink, one call per chunk.
func BenchmarkDirectWrites(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		chunk := make([]byte, size)

		b.Run(sizeLabel(size), func(b *testing.B) {
			sink := &countingSink{}
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = sink.Write(chunk)
			}
		})
	}
}

// BenchmarkBufferedWrites measures the same workload through the buffered writer.
func BenchmarkBufferedWrites(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		chunk := make([]byte, size)

		b.Run(sizeLabel(size), func(b *testing.B) {
			sink := &countingSink{}
			w := writer.New(sink)
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = w.Write(chunk)
			}
			_ = w.FlushAll()
		})
	}
}

// BenchmarkBufferedCapacities measures how the capacity threshold shapes
// the number of sink calls.
func BenchmarkBufferedCapacities(b *testing.B) {
	capacities := []int{4 << 10, 64 << 10, 1 << 20}
	chunk := make([]byte, 256)

	for _, capacity := range capacities {
		b.Run(sizeLabel(capacity), func(b *testing.B) {
			sink := &countingSink{}
			w, err := writer.NewSize(sink, capacity)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(chunk)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = w.Write(chunk)
			}
			_ = w.FlushAll()
		})
	}
}
