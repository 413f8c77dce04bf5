package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeNewGame(t *testing.T, at time.Time) string {
	t.Helper()
	state := engine.NewGame(utils.NewSeededRand(7), at)
	path := filepath.Join(t.TempDir(), "farm.json")
	require.NoError(t, writeSave(path, state))
	return path
}

func TestCatalogCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "full listing", want: "WHEAT"},
		{name: "single crop", args: []string{"WHEAT"}, want: "Wheat"},
		{name: "recipe", args: []string{"r_bread"}, want: "r_bread"},
		{name: "mascot", args: []string{"COW"}, want: "1500"},
		{name: "typo", args: []string{"WHAET"}, wantErr: domain.ErrUnknownEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, newCatalogCmd(), tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "did you mean WHEAT?")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestInspectCmd(t *testing.T) {
	path := writeNewGame(t, time.Now())

	out, err := execute(t, newInspectCmd(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "Farm")
	assert.Contains(t, out, "WHEAT")
	assert.Contains(t, out, "0 crops planted")
	assert.Contains(t, out, "8.0 (day)")
}

func TestInspectCmd_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not a save"), 0o644))

	_, err := execute(t, newInspectCmd(), path)
	assert.ErrorIs(t, err, domain.ErrMalformedSave)
}

func TestReconcileCmd_WritesBack(t *testing.T) {
	path := writeNewGame(t, time.Now().Add(-10*time.Minute))

	out, err := execute(t, newReconcileCmd(), "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Away: 10 minutes")
	assert.Contains(t, out, "Save updated")

	state, err := readSave(path)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), state.LastSaveTime, time.Minute)
}

func TestMigrateCmd(t *testing.T) {
	in := writeNewGame(t, time.Now())
	out := filepath.Join(t.TempDir(), "migrated.json")

	_, err := execute(t, newMigrateCmd(), in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	_, err = save.Decode(data)
	assert.NoError(t, err)
}

func TestValidateCmd(t *testing.T) {
	good := writeNewGame(t, time.Now())
	out, err := execute(t, newValidateCmd(), good)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid save")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"money": "lots", "plots": []}`), 0o644))
	_, err = execute(t, newValidateCmd(), bad)
	require.ErrorIs(t, err, domain.ErrMalformedSave)
	assert.Contains(t, err.Error(), "/money")
}

func TestSimulate_Deterministic(t *testing.T) {
	opts := simOptions{Ticks: 300, Seed: 42, Step: time.Second}

	a, err := simulate(context.Background(), opts)
	require.NoError(t, err)
	b, err := simulate(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Final.Money, b.Final.Money)
	assert.Equal(t, a.Final.XP, b.Final.XP)
	assert.Equal(t, a.Harvested, b.Harvested)
	assert.Equal(t, a.Events, b.Events)

	assert.Positive(t, a.Harvested)
	assert.Equal(t, a.Harvested+catalog.StartingItemCount, a.Sold)
	assert.Zero(t, a.Final.Inventory[simCrop])
	assert.Positive(t, a.Events[event.CropHarvested])
}

func TestSimulateCmd_RejectsZeroTicks(t *testing.T) {
	_, err := execute(t, newSimulateCmd(), "--ticks", "0")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
