package cli

import (
	"github.com/ymatsuo/wasuremono/internal/backup"
	"github.com/ymatsuo/wasuremono/internal/engine"
	"github.com/ymatsuo/wasuremono/internal/logger"
	"github.com/ymatsuo/wasuremono/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
	// Postgres reports whether the store is the Postgres backend, which
	// has no local file to snapshot.
	Postgres bool
}

// PerformAutomaticBackup creates an automatic backup before a destructive
// write and silently handles errors; a failed backup must not block the
// admin workflow.
func (c *Context) PerformAutomaticBackup() {
	if c.Postgres {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
