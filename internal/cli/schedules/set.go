package schedules

import (
	"fmt"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/cli"
	"github.com/ymatsuo/wasuremono/internal/utils"
)

type ScheduleSetCmd struct {
	Date             string `arg:"" help:"Date to configure (YYYY-MM-DD)."`
	Items            string `short:"i" help:"Comma-separated item names. Unknown names are added to the catalog."`
	DepartureMessage string `short:"d" help:"Message shown after departure."`
	ReturnMessage    string `short:"r" help:"Message shown after return."`
	Restricted       bool   `help:"Restrict departure to the time window."`
	Start            string `help:"Window start (HH:MM)." default:"07:50"`
	End              string `help:"Window end (HH:MM)." default:"08:10"`
}

func (c *ScheduleSetCmd) Validate() error {
	if !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	if !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time %q (expected HH:MM)", c.Start)
	}
	if !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time %q (expected HH:MM)", c.End)
	}
	return nil
}

func (c *ScheduleSetCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	names := splitNames(c.Items)
	err := ctx.Engine.SaveScheduleFromNames(
		c.Date, names, c.DepartureMessage, c.ReturnMessage, c.Restricted, c.Start, c.End)
	if err != nil {
		return err
	}

	fmt.Printf("Saved schedule for %s (%d item(s))\n", c.Date, len(names))
	return nil
}

func splitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
