package memory

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("details:place-%d", i), []byte(`{"website":"https://example.com"}`), time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, fmt.Sprintf("details:place-%d", i%1000))
	}
}

func BenchmarkMemoryCache_ConcurrentGetSet(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()
	value := []byte(`{"businesses":[],"page":1}`)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("results:%d", i%100)
			if i%4 == 0 {
				_ = cache.Set(ctx, key, value, time.Hour)
			} else {
				_, _ = cache.Get(ctx, key)
			}
			i++
		}
	})
}
