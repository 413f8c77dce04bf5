package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/challenge"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/progression"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/utils"
	"github.com/osse101/PixelFarm_Go/internal/validation"
	"github.com/osse101/PixelFarm_Go/internal/weather"
)

const saveFilePermission = 0o644

func readSave(path string) (*domain.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return save.Decode(data)
}

func writeSave(path string, state *domain.GameState) error {
	data, err := save.Encode(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, saveFilePermission); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <save>",
		Short: "Summarise a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := readSave(args[0])
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func printState(w io.Writer, s *domain.GameState) {
	titleColor.Fprintln(w, "Farm")
	renderTable(w, []string{"Money", "Level", "XP", "Next level", "Expansion", "Weather", "Hour", "Mascot", "Last save"}, [][]string{{
		formatInt(s.Money),
		formatInt(s.Level),
		formatInt(s.XP),
		formatInt(progression.XPToNextLevel(s.XP)),
		formatInt(s.ExpansionLevel),
		weather.DisplayName(s.Weather),
		fmt.Sprintf("%.1f (%s)", s.GameHour, weather.Phase(s.GameHour)),
		orDash(s.ActiveMascot),
		s.LastSaveTime.Format(time.RFC3339),
	}})

	if len(s.Inventory) > 0 {
		titleColor.Fprintln(w, "\nInventory")
		ids := make([]string, 0, len(s.Inventory))
		for id := range s.Inventory {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		var rows [][]string
		for _, id := range ids {
			rows = append(rows, []string{id, itemName(id), formatInt(s.Inventory[id])})
		}
		renderTable(w, []string{"Item", "Name", "Count"}, rows)
	}

	var crops [][]string
	unlocked := 0
	for _, p := range s.Plots {
		if p.Unlocked {
			unlocked++
		}
		if p.PlantedCrop != "" && p.OccupiedBy == p.ID {
			state := "growing"
			if p.Withered {
				state = "withered"
			}
			crops = append(crops, []string{formatInt(p.ID), p.PlantedCrop, p.PlantTime.Format(time.RFC3339), state})
		}
	}
	fmt.Fprintf(w, "\n%d of %d plots unlocked, %d crops planted\n", unlocked, len(s.Plots), len(crops))
	if len(crops) > 0 {
		renderTable(w, []string{"Plot", "Crop", "Planted", "State"}, crops)
	}

	if len(s.Orders) > 0 {
		titleColor.Fprintln(w, "\nOrders")
		var rows [][]string
		for _, o := range s.Orders {
			rows = append(rows, []string{o.ID, orDash(o.RequesterName), formatCounts(o.Items), formatInt(o.RewardMoney), o.ExpiresAt.Format(time.RFC3339)})
		}
		renderTable(w, []string{"ID", "From", "Wants", "Reward", "Expires"}, rows)
	}

	if s.ActiveEvent != nil {
		fmt.Fprintf(w, "\nActive event %s: progress %d, %d to go, ends %s\n",
			s.ActiveEvent.EventID, s.ActiveEvent.Progress, challenge.Remaining(s.ActiveEvent), s.ActiveEvent.EndTime.Format(time.RFC3339))
	}
}

func newReconcileCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "reconcile <save>",
		Short: "Show what happened since a save was written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := readSave(args[0])
			if err != nil {
				return err
			}
			rep := engine.Reconcile(state, weather.NewRoller(utils.NewRand()), time.Now())
			printReport(cmd.OutOrStdout(), rep)

			if !write {
				return nil
			}
			if err := writeSave(args[0], state); err != nil {
				return err
			}
			successColor.Fprintln(cmd.OutOrStdout(), "✓ Save updated")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the reconciled state back to the file")
	return cmd
}

func printReport(w io.Writer, rep engine.Report) {
	fmt.Fprintf(w, "Away: %d minutes\n", rep.AwayMinutes())
	fmt.Fprintf(w, "Crops ready: %d\n", rep.CropsReady)
	if rep.WeatherRerolled {
		warnColor.Fprintln(w, "Weather expired and was re-rolled")
	}
	for _, msg := range rep.Messages {
		fmt.Fprintln(w, "  "+msg)
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <in> <out>",
		Short: "Rewrite a save in the current format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read save: %w", err)
			}
			migrated, err := save.Migrate(data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], migrated, saveFilePermission); err != nil {
				return fmt.Errorf("failed to write save: %w", err)
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ Migrated %s -> %s\n", args[0], args[1])
			return nil
		},
	}
}

func itemName(id string) string {
	if it, ok := catalog.Item(id); ok {
		return it.Name
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <save>",
		Short: "Check a save file against the save schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read save: %w", err)
			}
			if err := validation.NewSchemaValidator().ValidateSave(data); err != nil {
				return err
			}
			if _, err := save.Decode(data); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid save\n", args[0])
			return nil
		},
	}
}
