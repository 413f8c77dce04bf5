package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_Publish(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name     string
		handlers []Handler
		wantErr  bool
		wantRuns int
	}{
		{"no subscribers", nil, false, 0},
		{"single handler", []Handler{nil}, false, 1},
		{"handlers run in order", []Handler{nil, nil, nil}, false, 3},
		{"failure does not stop later handlers", []Handler{
			func(context.Context, Event) error { return errBoom },
			nil,
		}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := NewMemoryBus()
			runs := 0
			for _, h := range tt.handlers {
				if h == nil {
					h = func(_ context.Context, e Event) error {
						assert.Equal(t, ItemSold, e.Type)
						runs++
						return nil
					}
				}
				bus.Subscribe(ItemSold, h)
			}

			err := bus.Publish(context.Background(), New(ItemSold, "payload"))
			if tt.wantErr {
				require.ErrorIs(t, err, errBoom)
				assert.Contains(t, err.Error(), string(ItemSold))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRuns, runs)
		})
	}
}

func TestMemoryBus_OtherTypesNotDelivered(t *testing.T) {
	bus := NewMemoryBus()
	called := false
	bus.Subscribe(CropHarvested, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), New(ItemSold, nil)))
	assert.False(t, called)
}

func TestNew_StampsSchemaVersion(t *testing.T) {
	ev := New(GameSaved, nil)
	assert.Equal(t, EventSchemaVersion, ev.Version)
	assert.Equal(t, GameSaved, ev.Type)
}
