// Package sched provides the two interchangeable concurrency
// strategies the engine's two parallel regions (per-week match
// fan-out, per-replica rating-search fan-out) are built on: a
// work-stealing worker pool and a composable errgroup-based fork-join
// (spec.md §5). Both run n independent, side-effect-isolated units of
// work and block until all have completed; neither introduces a lock,
// matching the "no suspension points inside a match" guarantee.
package sched

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Mode selects which scheduler Run dispatches to.
type Mode int

const (
	// ModeWorkStealing runs work over a fixed channel-fed goroutine
	// pool sized to GOMAXPROCS. Lower overhead; preferred for the
	// single parallel region (one axis at a time).
	ModeWorkStealing Mode = iota
	// ModeComposable runs each unit in its own goroutine under
	// golang.org/x/sync/errgroup, with no shared worker pool, so it can
	// be nested inside an outer parallel region (e.g. replicas each
	// fanning out their own weeks). The goroutine count is not limited.
	ModeComposable
)

// Run executes fn(i) for i in [0,n) under the given mode, blocking
// until every unit has completed. fn must not panic across the
// returned goroutine boundary in a way that needs recovering; per
// spec.md §7 a panic inside the minute loop aborts the season.
func Run(mode Mode, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	switch mode {
	case ModeComposable:
		runComposable(n, fn)
	default:
		runWorkStealing(n, fn)
	}
}

func runWorkStealing(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

func runComposable(n int, fn func(i int)) {
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
