package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLock_SerializesPerKey(t *testing.T) {
	lm := NewLockManager()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("main", func() error {
				n := inside.Add(1)
				for {
					m := maxInside.Load()
					if n <= m || maxInside.CompareAndSwap(m, n) {
						break
					}
				}
				inside.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Zero(t, lm.Held())
}

func TestWithLock_KeysAreIndependent(t *testing.T) {
	lm := NewLockManager()
	entered := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = lm.WithLock("main", func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	done := make(chan struct{})
	go func() {
		_ = lm.WithLock("backup", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("backup slot blocked behind main")
	}
	assert.Equal(t, 1, lm.Held())

	close(release)
	require.Eventually(t, func() bool { return lm.Held() == 0 }, time.Second, 5*time.Millisecond)
}

func TestWithLock_ReturnsFnError(t *testing.T) {
	lm := NewLockManager()
	err := lm.WithLock("main", func() error { return assert.AnError })

	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, lm.Held())
	assert.NoError(t, lm.WithLock("main", func() error { return nil }))
}
