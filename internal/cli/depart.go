package cli

import "fmt"

// DepartCmd records the departure timestamp for today. Running it again
// the same day replaces the earlier timestamp.
type DepartCmd struct {
	Force bool `help:"Record departure even outside a restricted window."`
}

func (c *DepartCmd) Run(ctx *Context) error {
	allowed, restriction := ctx.Engine.DepartureAllowed()
	if !allowed && !c.Force {
		return fmt.Errorf("outside departure window %s - %s (use --force to override)",
			restriction.StartTime, restriction.EndTime)
	}

	if err := ctx.Engine.RecordDeparture(); err != nil {
		return err
	}

	info := ctx.Engine.CurrentMode()
	fmt.Printf("Departure recorded at %s\n", info.DepartureTime)

	messages := ctx.Engine.MessagesForDate(ctx.Engine.Today())
	if messages.Departure != "" {
		fmt.Println(messages.Departure)
	}
	return nil
}

// ResetCmd deletes today's history record, returning the day to morning
// mode.
type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	if err := ctx.Engine.ResetToday(); err != nil {
		return err
	}
	fmt.Println("Today's departure record cleared.")
	return nil
}
