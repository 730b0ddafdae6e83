package cli

import (
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/models"
)

// StatusCmd shows the day's current mode and checklist.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	today := ctx.Engine.Today()
	info := ctx.Engine.CurrentMode()
	messages := ctx.Engine.MessagesForDate(today)

	switch info.Mode {
	case models.ModeMorning:
		fmt.Printf("Today (%s): morning\n", today)

		items := ctx.Engine.ItemsForDate(today)
		if len(items) == 0 {
			fmt.Println("No items scheduled for today.")
		} else {
			fmt.Println("Things to bring:")
			for _, item := range items {
				fmt.Printf("  %s %s\n", item.Icon, item.Name)
			}
		}

		restriction := ctx.Engine.TimeRestrictionForDate(today)
		if restriction.Restricted {
			fmt.Printf("Departure window: %s - %s\n", restriction.StartTime, restriction.EndTime)
		}

	case models.ModeDeparture:
		fmt.Printf("Today (%s): departed at %s\n", today, info.DepartureTime)
		if messages.Departure != "" {
			fmt.Println(messages.Departure)
		}

	case models.ModeReturn:
		fmt.Printf("Today (%s): welcome back\n", today)
		if messages.Return != "" {
			fmt.Println(messages.Return)
		}
	}

	return nil
}
