package items

import (
	"fmt"
	"strings"

	"github.com/ymatsuo/wasuremono/internal/cli"
	"github.com/ymatsuo/wasuremono/internal/constants"
)

type ItemAddCmd struct {
	Name string `arg:"" help:"Item name."`
	Icon string `short:"i" help:"Display glyph." default:"🎒"`
}

func (c *ItemAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	return nil
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	icon := c.Icon
	if icon == "" {
		icon = constants.DefaultItemIcon
	}

	item, err := ctx.Store.CreateItem(strings.TrimSpace(c.Name), icon)
	if err != nil {
		return err
	}

	fmt.Printf("Item %q ready (id %d)\n", item.Name, item.ID)
	return nil
}
