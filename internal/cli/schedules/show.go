package schedules

import (
	"fmt"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/cli"
	"github.com/ymatsuo/wasuremono/internal/utils"
)

type ScheduleShowCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD)."`
}

func (c *ScheduleShowCmd) Validate() error {
	if !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *ScheduleShowCmd) Run(ctx *cli.Context) error {
	details := ctx.Engine.ScheduleDetails(c.Date)

	fmt.Printf("Schedule for %s\n", c.Date)
	if len(details.ItemNames) == 0 {
		fmt.Println("  Items: (none)")
	} else {
		fmt.Printf("  Items: %s\n", strings.Join(details.ItemNames, ", "))
	}
	fmt.Printf("  Departure message: %s\n", details.DepartureMessage)
	fmt.Printf("  Return message: %s\n", details.ReturnMessage)
	if details.Restricted {
		fmt.Printf("  Window: %s - %s (restricted)\n", details.StartTime, details.EndTime)
	} else {
		fmt.Printf("  Window: %s - %s\n", details.StartTime, details.EndTime)
	}
	return nil
}
