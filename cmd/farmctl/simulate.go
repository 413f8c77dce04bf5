package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

// simCrop is what the autopilot plants and sells
const simCrop = "WHEAT"

type simOptions struct {
	Ticks int
	Seed  int64
	Step  time.Duration
	Out   string
}

type simSummary struct {
	Ticks     int
	Harvested int
	Sold      int
	Final     *domain.GameState
	Events    map[event.Type]int
}

func newSimulateCmd() *cobra.Command {
	opts := simOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless farm with a simple autopilot",
		Long: `Runs a new game for a number of ticks on a simulated clock. Each tick the
autopilot harvests everything, sells the harvest and replants wheat on free
plots. The same seed always gives the same result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Ticks <= 0 {
				return fmt.Errorf("%w: --ticks must be positive", domain.ErrValidation)
			}
			sum, err := simulate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), sum)
			if opts.Out != "" {
				if err := writeSave(opts.Out, sum.Final); err != nil {
					return err
				}
				successColor.Fprintf(cmd.OutOrStdout(), "✓ Final state written to %s\n", opts.Out)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Ticks, "ticks", "t", 600, "Number of ticks to run")
	cmd.Flags().Int64VarP(&opts.Seed, "seed", "s", 1, "Random seed")
	cmd.Flags().DurationVar(&opts.Step, "step", time.Second, "Simulated time per tick")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the final state to this save file")
	return cmd
}

func simulate(ctx context.Context, opts simOptions) (*simSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	step := opts.Step
	if step <= 0 {
		step = time.Second
	}

	sum := &simSummary{Ticks: opts.Ticks, Events: make(map[event.Type]int)}
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, func(_ context.Context, evt event.Event) error {
		sum.Events[evt.Type]++
		return nil
	})

	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	rng := utils.NewSeededRand(opts.Seed)
	eng := engine.New(bus,
		engine.WithRand(rng),
		engine.WithClock(func() time.Time { return now }),
	)

	for range opts.Ticks {
		now = now.Add(step)
		eng.Tick(ctx, now)

		res, err := eng.HarvestAll(ctx)
		if err != nil {
			return nil, err
		}
		sum.Harvested += res.Yields[simCrop]

		for {
			sold, err := eng.Sell(ctx, simCrop)
			if err != nil || !sold {
				break
			}
			sum.Sold++
		}

		state := eng.Snapshot()
		for _, p := range state.Plots {
			if p.Unlocked && p.PlantedCrop == "" && p.OccupiedBy == domain.NoRoot {
				// drag keeps failed attempts quiet once money runs out
				if _, err := eng.Plant(ctx, p.ID, simCrop, true); err != nil {
					break
				}
			}
		}
	}

	sum.Final = eng.Snapshot()
	return sum, nil
}

func printSummary(w io.Writer, sum *simSummary) {
	s := sum.Final
	titleColor.Fprintf(w, "Simulated %d ticks\n", sum.Ticks)
	renderTable(w, []string{"Money", "Level", "XP", "Harvested", "Sold", "Orders open"}, [][]string{{
		formatInt(s.Money), formatInt(s.Level), formatInt(s.XP),
		formatInt(sum.Harvested), formatInt(sum.Sold), formatInt(len(s.Orders)),
	}})

	types := make([]string, 0, len(sum.Events))
	for t := range sum.Events {
		types = append(types, string(t))
	}
	sort.Strings(types)
	var rows [][]string
	for _, t := range types {
		rows = append(rows, []string{t, formatInt(sum.Events[event.Type(t)])})
	}
	if len(rows) > 0 {
		renderTable(w, []string{"Event", "Count"}, rows)
	}
}
