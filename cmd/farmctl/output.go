package main

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
