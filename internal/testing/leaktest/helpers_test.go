package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() { defer wg.Done() }()
		}
		wg.Wait()
	})
}

func TestSettle_TimesOut(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	_, ok := settle(0, 2*pollInterval)
	assert.False(t, ok)
}
