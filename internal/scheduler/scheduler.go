package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task once immediately and then on each tick until ctx is done.
// A failing run is logged and does not stop the loop.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	run := func() {
		start := time.Now()
		if err := task(ctx); err != nil {
			log.Printf("[%s] error: %v", name, err)
			return
		}
		log.Printf("[%s] ok took=%s", name, time.Since(start).Round(time.Millisecond))
	}

	run()

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
