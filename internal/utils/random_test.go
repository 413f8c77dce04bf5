package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededRand_Deterministic(t *testing.T) {
	a := NewSeededRand(42)
	b := NewSeededRand(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewSeededRand_DifferentSeedsDiverge(t *testing.T) {
	a := NewSeededRand(1)
	b := NewSeededRand(2)

	same := 0
	for i := 0; i < 20; i++ {
		if a.IntN(1000) == b.IntN(1000) {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestRandomInt(t *testing.T) {
	r := NewSeededRand(7)

	tests := []struct {
		name     string
		min, max int
	}{
		{name: "normal range", min: 3, max: 7},
		{name: "single value", min: 5, max: 5},
		{name: "inverted range returns min", min: 9, max: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got := RandomInt(r, tt.min, tt.max)
				if tt.min >= tt.max {
					assert.Equal(t, tt.min, got)
					continue
				}
				assert.GreaterOrEqual(t, got, tt.min)
				assert.LessOrEqual(t, got, tt.max)
			}
		})
	}
}

func TestChance_Bounds(t *testing.T) {
	r := NewSeededRand(3)
	for i := 0; i < 100; i++ {
		assert.False(t, Chance(r, 0))
		assert.True(t, Chance(r, 1))
	}
}

func TestPick_CoversAllElements(t *testing.T) {
	r := NewSeededRand(11)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}

	for i := 0; i < 300; i++ {
		seen[Pick(r, items)] = true
	}
	assert.Len(t, seen, 3)
}
