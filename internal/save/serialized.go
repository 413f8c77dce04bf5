package save

import (
	"context"

	"github.com/osse101/PixelFarm_Go/internal/concurrency"
)

// SerializedStore lets only one read or write touch a slot at a time, so an
// autosave and a manual save to the same slot never interleave.
type SerializedStore struct {
	next  Store
	locks *concurrency.LockManager
}

// NewSerializedStore wraps next with per-slot locking
func NewSerializedStore(next Store) *SerializedStore {
	return &SerializedStore{next: next, locks: concurrency.NewLockManager()}
}

func (s *SerializedStore) Put(ctx context.Context, slot string, data []byte) error {
	return s.locks.WithLock(slot, func() error {
		return s.next.Put(ctx, slot, data)
	})
}

func (s *SerializedStore) Get(ctx context.Context, slot string) ([]byte, error) {
	var data []byte
	err := s.locks.WithLock(slot, func() error {
		var err error
		data, err = s.next.Get(ctx, slot)
		return err
	})
	return data, err
}
