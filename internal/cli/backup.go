package cli

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup [path]",
	Short: "Back up the SQLite database",
	Long: `Write a consistent copy of the SQLite database to path. Without a
path, the copy is written next to the database as
<name>_backup_YYYYMMDD_HHMMSS.db. PostgreSQL stores are not supported;
use pg_dump instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		path := backupPath(cfg.Database.Path, time.Now())
		if len(args) == 1 {
			path = args[0]
		}
		if err := store.Backup(ctx, path); err != nil {
			return err
		}
		cmd.Printf("Backup written to %s\n", path)
		return nil
	},
}

// backupPath derives the default backup file name from the database path.
func backupPath(dbPath string, now time.Time) string {
	ext := filepath.Ext(dbPath)
	base := strings.TrimSuffix(dbPath, ext)
	if ext == "" {
		ext = ".db"
	}
	return base + "_backup_" + now.Format("20060102_150405") + ext
}
