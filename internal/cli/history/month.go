package history

import (
	"fmt"
	"sort"

	"github.com/ymatsuo/wasuremono/internal/cli"
)

type HistoryMonthCmd struct {
	Year  int `arg:"" help:"Year."`
	Month int `arg:"" help:"Month (1-12)."`
}

func (c *HistoryMonthCmd) Validate() error {
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *HistoryMonthCmd) Run(ctx *cli.Context) error {
	entries := ctx.Engine.MonthlyHistory(c.Year, c.Month)

	if len(entries) == 0 {
		fmt.Printf("No departures recorded in %04d-%02d.\n", c.Year, c.Month)
		return nil
	}

	days := make([]int, 0, len(entries))
	for day := range entries {
		days = append(days, day)
	}
	sort.Ints(days)

	fmt.Printf("Departures in %04d-%02d:\n", c.Year, c.Month)
	for _, day := range days {
		entry := entries[day]
		fmt.Printf("  %2d: %s at %s\n", day, entry.Status, entry.Time)
	}
	return nil
}
