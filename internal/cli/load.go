package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/pipeline"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and append it to the database",
	Long: `Generate the full dataset and append every table to the database in
the fixed order product, store, customer, time, sales, supplier,
feedback, loyalty. Missing tables are created first. Each table is
committed on its own; a failure stops the load and leaves the tables
appended so far in place.

Example:
  pgedge-retailgen load --config config/config.json
  pgedge-retailgen load --connection "postgres://user@localhost/retail"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateLoad(); err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		logging.Info().
			Str("backend", store.Backend()).
			Msg("Loading retail data")

		return pipeline.Run(ctx, cfg, store)
	},
}
