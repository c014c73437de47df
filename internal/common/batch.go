package common

import (
	"context"
	"sync"
)

// BatchFunc processes one item by index. It must handle its own failures;
// the scheduler never aborts a batch because one item errored.
type BatchFunc func(ctx context.Context, index int)

// Config holds the configuration for batch scheduling behavior.
type Config struct {
	batchSize int
	maxItems  int
}

// Option is a functional option for configuring batch behavior.
type Option func(*Config)

// WithBatchSize sets how many items run concurrently within one batch.
// Default is 10.
func WithBatchSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithMaxItems caps how many items are processed in total.
// Default is 100.
func WithMaxItems(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.maxItems = n
		}
	}
}

// defaultConfig returns the default batch configuration.
func defaultConfig() *Config {
	return &Config{
		batchSize: 10,
		maxItems:  100,
	}
}

// Batch runs fn for up to min(total, maxItems) items. Items within a batch
// run concurrently; batches run sequentially relative to each other so the
// upstream rate-limit budget is respected.
//
// The scheduler stops issuing new batches once the context is done, but it
// never interrupts a batch in flight; callers get whatever work completed
// before the deadline. The number of items dispatched is returned.
//
// Example usage:
//
//	processed := common.Batch(ctx, len(repos), func(ctx context.Context, i int) {
//	    scoreRepo(ctx, repos[i])
//	},
//	    common.WithBatchSize(10),
//	    common.WithMaxItems(100),
//	)
func Batch(ctx context.Context, total int, fn BatchFunc, opts ...Option) int {
	if fn == nil || total <= 0 {
		return 0
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if total > cfg.maxItems {
		total = cfg.maxItems
	}

	dispatched := 0
	for start := 0; start < total; start += cfg.batchSize {
		// Deadline check between batches only; an in-flight batch is
		// allowed to finish.
		if ctx.Err() != nil {
			break
		}

		end := start + cfg.batchSize
		if end > total {
			end = total
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(index int) {
				defer wg.Done()
				fn(ctx, index)
			}(i)
		}
		wg.Wait()

		dispatched += end - start
	}

	return dispatched
}
