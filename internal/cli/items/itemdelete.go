package items

import (
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/cli"
)

type ItemDeleteCmd struct {
	ID int64 `arg:"" help:"Item id to delete."`
}

func (c *ItemDeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteItem(c.ID); err != nil {
		return err
	}

	// Schedules referencing the id keep it; readers drop the dangling
	// reference when resolving.
	fmt.Printf("Deleted item %d\n", c.ID)
	return nil
}
