package database

import (
	"context"
	"log"
	"time"
)

// Backoff antar percobaan koneksi: 2s, 5s, 10s, lalu 15s seterusnya.
var backoffSteps = []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second, 15 * time.Second}

func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(backoffSteps) {
		return backoffSteps[len(backoffSteps)-1]
	}
	return backoffSteps[attempt-1]
}

// Retry menjalankan fn sampai sukses atau ctx selesai.
func Retry(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	return retryWith(ctx, name, fn, Backoff)
}

func retryWith(ctx context.Context, name string, fn func(ctx context.Context) error, wait func(int) time.Duration) error {
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		d := wait(attempt)
		log.Printf("[DB] %s connection failed (attempt %d): %v, retry in %s", name, attempt, err, d)

		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
