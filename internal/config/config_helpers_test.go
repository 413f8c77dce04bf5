package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset uses default", "", 42},
		{"valid integer", "100", 100},
		{"negative", "-10", -10},
		{"zero", "0", 0},
		{"not a number", "not-a-number", 42},
		{"float", "42.5", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset uses default", "", 5 * time.Minute},
		{"minutes", "10m", 10 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"compound", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"plain number has no unit", "100", 5 * time.Minute},
		{"garbage", "not-a-duration", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"unset", "", nil},
		{"single", "127.0.0.1", []string{"127.0.0.1"}},
		{"trims and drops empties", " a , ,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_LIST_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsList("TEST_LIST_VAR"))
		})
	}
}
