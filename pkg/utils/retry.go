package utils

import (
	"context"
	"log"
	"time"
)

// Retry runs fn up to attempts times, sleeping delay between failures.
// The delay doubles after each failed attempt. The last error is returned
// when every attempt fails. A cancelled context stops further attempts.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		log.Printf("attempt %d/%d failed: %v", i+1, attempts, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return err
}
