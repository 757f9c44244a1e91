package sched

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWorkStealingVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 50
	var seen [n]int32
	Run(ModeWorkStealing, n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		assert.Equal(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestRunComposableVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 50
	var seen [n]int32
	Run(ModeComposable, n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		assert.Equal(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestRunWithZeroOrNegativeNIsNoop(t *testing.T) {
	called := false
	Run(ModeWorkStealing, 0, func(i int) { called = true })
	Run(ModeComposable, -1, func(i int) { called = true })
	assert.False(t, called)
}

func TestRunConcurrencyIsSafeAcrossGoroutines(t *testing.T) {
	const n = 200
	var mu sync.Mutex
	total := 0
	Run(ModeWorkStealing, n, func(i int) {
		mu.Lock()
		total += i
		mu.Unlock()
	})
	expected := n * (n - 1) / 2
	assert.Equal(t, expected, total)
}
