package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/pipeline"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the configured tables if they do not exist",
	Long: `Create every table listed in table_schemas that does not exist yet.
When the configuration has no table_schemas, the built-in definitions of
the eight retail tables are used.

Example:
  pgedge-retailgen setup --db-path retail.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		return pipeline.Setup(ctx, store, pipeline.Schemas(cfg))
	},
}
