package system

import (
	"errors"
	"fmt"

	"github.com/ymatsuo/wasuremono/internal/cli"
	"github.com/ymatsuo/wasuremono/internal/keyring"
	"github.com/ymatsuo/wasuremono/internal/storage"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !storage.IsPostgresConnString(c.ConnectionString) {
		return fmt.Errorf("only PostgreSQL connection strings belong in the keyring")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type KeyringShowCmd struct{}

func (c *KeyringShowCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println(connStr)
	return nil
}

type KeyringClearCmd struct{}

func (c *KeyringClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
