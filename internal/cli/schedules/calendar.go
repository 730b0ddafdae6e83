package schedules

import (
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/cli"
)

type ScheduleCalendarCmd struct {
	Year  int `arg:"" help:"Year."`
	Month int `arg:"" help:"Month (1-12)."`
}

func (c *ScheduleCalendarCmd) Validate() error {
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *ScheduleCalendarCmd) Run(ctx *cli.Context) error {
	dates := ctx.Engine.ScheduledDatesInMonth(c.Year, c.Month)

	if len(dates) == 0 {
		fmt.Printf("No schedules in %04d-%02d.\n", c.Year, c.Month)
		return nil
	}

	fmt.Printf("Scheduled dates in %04d-%02d:\n", c.Year, c.Month)
	for _, d := range dates {
		fmt.Printf("  %s\n", d)
	}
	return nil
}
