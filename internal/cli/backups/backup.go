package backups

import (
	"fmt"
	"path/filepath"

	"github.com/ymatsuo/wasuremono/internal/backup"
	"github.com/ymatsuo/wasuremono/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if ctx.Postgres {
		return fmt.Errorf("backups are only supported for SQLite storage")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if ctx.Postgres {
		return fmt.Errorf("backups are only supported for SQLite storage")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name to restore (as shown by 'backup list')."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if ctx.Postgres {
		return fmt.Errorf("backups are only supported for SQLite storage")
	}

	// Close the live database before swapping the file underneath it.
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath := filepath.Join(mgr.GetBackupDir(), c.Name)
	if err := mgr.RestoreBackup(backupPath); err != nil {
		return err
	}

	fmt.Printf("Restored database from %s\n", c.Name)
	return nil
}
