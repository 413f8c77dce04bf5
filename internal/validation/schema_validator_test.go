package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

func TestValidateSave_AcceptsEncodedGame(t *testing.T) {
	data, err := save.Encode(engine.NewGame(utils.NewSeededRand(3), time.Now()))
	require.NoError(t, err)

	assert.NoError(t, NewSchemaValidator().ValidateSave(data))
}

func TestValidateSave_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		location string
		keyword  string
	}{
		{
			name:     "money is a string",
			data:     `{"money": "lots", "plots": []}`,
			location: "/money",
			keyword:  "type",
		},
		{
			name:     "negative money",
			data:     `{"money": -500, "plots": []}`,
			location: "/money",
			keyword:  "minimum",
		},
		{
			name:     "plots missing",
			data:     `{"money": 5}`,
			location: "(root)",
			keyword:  "required",
		},
		{
			name:     "negative plot tier",
			data:     `{"money": 5, "plots": [{"id": 0, "tier": -1}]}`,
			location: "/plots/0/tier",
			keyword:  "minimum",
		},
		{
			name:     "order without items",
			data:     `{"money": 5, "plots": [], "orders": [{"id": "o1"}]}`,
			location: "/orders/0",
			keyword:  "required",
		},
		{
			name:     "game hour out of range",
			data:     `{"money": 5, "plots": [], "gameHour": 24}`,
			location: "/gameHour",
			keyword:  "exclusiveMaximum",
		},
	}

	v := NewSchemaValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSave([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedSave)
			assert.Contains(t, err.Error(), tt.location)
			assert.Contains(t, err.Error(), tt.keyword)
		})
	}
}

func TestValidateBytes_NotJSON(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte("{"), SaveSchema)
	assert.ErrorContains(t, err, "failed to parse JSON data")
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte("{}"), "missing.schema.json")
	assert.ErrorContains(t, err, "failed to load schema")
}

func TestLoadSchema_Cached(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	a, err := v.loadSchema(SaveSchema)
	require.NoError(t, err)
	b, err := v.loadSchema(SaveSchema)
	require.NoError(t, err)
	assert.Same(t, a, b)
}
