package asset

import (
	"context"
	"time"
)

// Readier is anything with asynchronous readiness, such as an entity or a loader
type Readier interface {
	Ready() bool
}

// failer is implemented by readiers that can fail permanently
type failer interface {
	Err() error
}

// Readiers adapts a typed slice for WaitReady
func Readiers[T Readier](items []T) []Readier {
	out := make([]Readier, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// WaitReady blocks until every item is ready, checking now and then every interval
// Returns the first permanent failure reported by an item, or ctx's error
func WaitReady(ctx context.Context, interval time.Duration, items ...Readier) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ready, err := allReady(items)
		if err != nil {
			return err
		}
		if ready {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func allReady(items []Readier) (bool, error) {
	ready := true
	for _, it := range items {
		if f, ok := it.(failer); ok {
			if err := f.Err(); err != nil {
				return false, err
			}
		}
		if !it.Ready() {
			ready = false
		}
	}
	return ready, nil
}
