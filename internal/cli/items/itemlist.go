package items

import (
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/cli"
)

type ItemListCmd struct{}

func (c *ItemListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.ListItems()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%4d  %s %s\n", item.ID, item.Icon, item.Name)
	}
	return nil
}
