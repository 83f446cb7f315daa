package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/anomredux/usage-cal/internal/config"
	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/scanner"
	"github.com/anomredux/usage-cal/internal/timeutil"
	"github.com/anomredux/usage-cal/internal/ui/components"
)

// runNoTUI prints the window summary and per-provider/per-model tables
// to stdout. No colors, no alt screen, safe to pipe.
func runNoTUI(cfg config.Config, root string, win timeutil.Period) {
	files, err := scanner.Collect(context.Background(), root, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading logs: %v\n", err)
		os.Exit(1)
	}

	cutoff := timeutil.CutoffKey(timeutil.PeriodDays(win))
	stats := domain.ComputeStats(files, cutoff)

	fmt.Printf("Usage (%s)\n", win)
	fmt.Printf("  Sessions: %s   Messages: %s   Tokens: %s   Cost: %s   Avg/Session: %s\n\n",
		components.FormatNumber(stats.SessionCount),
		components.FormatNumber(stats.TotalMessages),
		components.FormatCompact(stats.TotalTokens),
		components.FormatCost(stats.TotalCost),
		components.FormatCost(stats.AvgCostPerSession()))

	printBreakdown("Provider", domain.ComputeProviderBreakdown(files, cutoff))
	fmt.Println()
	printBreakdown("Model", domain.ComputeModelBreakdown(files, cutoff))
}

func printBreakdown(label string, rows []domain.Row) {
	if len(rows) == 0 {
		fmt.Printf("%s breakdown: no usage in this window\n", label)
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})))

	headers := []string{label, "Sessions", "Messages", "Tokens", "Cost", "Share"}
	table.Header(headers)

	alignments := make([]tw.Align, len(headers))
	alignments[0] = tw.AlignLeft
	for i := 1; i < len(alignments); i++ {
		alignments[i] = tw.AlignRight
	}
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.PerColumn = alignments
	})

	for _, r := range rows {
		table.Append([]string{
			r.Name,
			components.FormatNumber(r.Sessions),
			components.FormatNumber(r.Messages),
			components.FormatCompact(r.Tokens),
			components.FormatCost(r.Cost),
			fmt.Sprintf("%d%%", r.Share),
		})
	}
	table.Render()
}
