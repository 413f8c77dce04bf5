package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [id]",
		Short: "List crops, products, recipes and mascots, or show one entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printCatalogEntry(cmd.OutOrStdout(), args[0])
			}
			printCatalog(cmd.OutOrStdout())
			return nil
		},
	}
}

var itemHeader = []string{"ID", "Name", "Type", "Level", "Seed", "Price", "Grow", "Size"}

func printCatalog(w io.Writer) {
	titleColor.Fprintln(w, "Crops")
	var rows [][]string
	for _, it := range catalog.Crops() {
		rows = append(rows, itemRow(it))
	}
	renderTable(w, itemHeader, rows)

	titleColor.Fprintln(w, "\nProducts")
	rows = nil
	for _, it := range catalog.Items() {
		if !it.IsCrop() {
			rows = append(rows, itemRow(it))
		}
	}
	renderTable(w, itemHeader, rows)

	titleColor.Fprintln(w, "\nRecipes")
	rows = nil
	for _, r := range catalog.Recipes() {
		rows = append(rows, recipeRow(r))
	}
	renderTable(w, []string{"ID", "Output", "Inputs", "Level", "Time", "XP"}, rows)

	titleColor.Fprintln(w, "\nMascots")
	rows = nil
	for _, m := range catalog.Mascots() {
		rows = append(rows, []string{m.ID, m.Name, formatInt(m.Price), m.Description})
	}
	renderTable(w, []string{"ID", "Name", "Price", "Effect"}, rows)
}

func printCatalogEntry(w io.Writer, id string) error {
	if it, ok := catalog.Item(id); ok {
		renderTable(w, itemHeader, [][]string{itemRow(it)})
		fmt.Fprintln(w, it.Description)
		return nil
	}
	if r, ok := catalog.Recipe(id); ok {
		renderTable(w, []string{"ID", "Output", "Inputs", "Level", "Time", "XP"}, [][]string{recipeRow(r)})
		return nil
	}
	if m, ok := catalog.Mascot(id); ok {
		renderTable(w, []string{"ID", "Name", "Price", "Effect"}, [][]string{{m.ID, m.Name, formatInt(m.Price), m.Description}})
		return nil
	}

	if hint := catalog.Suggest(id); hint != "" {
		return fmt.Errorf("%w: no catalog entry %q, did you mean %s?", domain.ErrUnknownEntity, id, hint)
	}
	return fmt.Errorf("%w: no catalog entry %q", domain.ErrUnknownEntity, id)
}

func itemRow(it domain.Item) []string {
	seed, grow, size := "-", "-", "-"
	if it.IsCrop() {
		w, h := it.Footprint()
		seed = formatInt(it.SeedCost)
		grow = it.GrowthTime.String()
		size = fmt.Sprintf("%dx%d", w, h)
	}
	return []string{it.ID, it.Name, string(it.Kind), formatInt(it.UnlockLevel), seed, formatInt(it.SellPrice), grow, size}
}

func recipeRow(r domain.Recipe) []string {
	return []string{r.ID, r.OutputItem, formatCounts(r.Inputs), formatInt(r.UnlockLevel), r.CraftTime.String(), formatInt(r.XPReward)}
}

func formatCounts(items []domain.ItemCount) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Count, it.ItemID))
	}
	return strings.Join(parts, ", ")
}
