package schedules

import (
	"fmt"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/cli"
	"github.com/ymatsuo/wasuremono/internal/utils"
)

type ScheduleBulkCmd struct {
	Dates            string `arg:"" help:"Comma-separated dates (YYYY-MM-DD) to apply the same schedule to."`
	Items            string `short:"i" help:"Comma-separated item names. Unknown names are added to the catalog."`
	DepartureMessage string `short:"d" help:"Message shown after departure."`
	ReturnMessage    string `short:"r" help:"Message shown after return."`
	Restricted       bool   `help:"Restrict departure to the time window."`
	Start            string `help:"Window start (HH:MM)." default:"07:50"`
	End              string `help:"Window end (HH:MM)." default:"08:10"`
}

func (c *ScheduleBulkCmd) Validate() error {
	dates := splitNames(c.Dates)
	if len(dates) == 0 {
		return fmt.Errorf("at least one date is required")
	}
	for _, d := range dates {
		if !utils.ValidateDateFormat(d) {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", d)
		}
	}
	if !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time %q (expected HH:MM)", c.Start)
	}
	if !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time %q (expected HH:MM)", c.End)
	}
	return nil
}

func (c *ScheduleBulkCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	dates := splitNames(c.Dates)
	names := splitNames(c.Items)

	// Ids are resolved once; each date is its own upsert, so a failure
	// partway leaves earlier dates written.
	err := ctx.Engine.SaveBulkSchedule(
		dates, names, c.DepartureMessage, c.ReturnMessage, c.Restricted, c.Start, c.End)
	if err != nil {
		return err
	}

	fmt.Printf("Saved schedule for %s\n", strings.Join(dates, ", "))
	return nil
}
