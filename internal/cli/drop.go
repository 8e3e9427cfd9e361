package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/pipeline"
)

var dropAll bool

var dropCmd = &cobra.Command{
	Use:   "drop [table...]",
	Short: "Drop tables from the database",
	Long: `Drop the named tables, or with --all every table in table_schemas
(or the built-in retail tables when none are configured).

Example:
  pgedge-retailgen drop sales feedback
  pgedge-retailgen drop --all`,
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVar(&dropAll, "all", false,
		"drop every configured table")
}

func runDrop(cmd *cobra.Command, args []string) error {
	names := args
	if dropAll {
		names = nil
		for name := range pipeline.Schemas(cfg) {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		return errors.New("no tables given; name tables to drop or use --all")
	}

	ctx, cancel := signalContext()
	defer cancel()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, name := range names {
		if err := store.DropTable(ctx, name); err != nil {
			return err
		}
		logging.Info().
			Str("table", name).
			Msg("Dropped table")
	}
	return nil
}
