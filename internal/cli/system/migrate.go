package system

import (
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/cli"
)

// MigrateCmd applies any pending schema migrations. Init is idempotent, so
// this is the same code path; the separate command exists so upgrades can
// be run deliberately.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Println("Database schema is up to date.")
	return nil
}
