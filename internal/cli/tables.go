package cli

import (
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables in the database with row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		tables, err := store.ListTables(ctx)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			cmd.Println("No tables found.")
			return nil
		}

		for _, name := range tables {
			n, err := store.CountRows(ctx, name)
			if err != nil {
				return err
			}
			cmd.Printf("  %-20s %d rows\n", name, n)
		}
		return nil
	},
}

var tablesInfoCmd = &cobra.Command{
	Use:   "info <table>",
	Short: "Show the columns of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		columns, err := store.TableInfo(ctx, args[0])
		if err != nil {
			return err
		}

		cmd.Printf("Table %s:\n", args[0])
		for _, c := range columns {
			flags := ""
			if c.NotNull {
				flags += " NOT NULL"
			}
			if c.PrimaryKey {
				flags += " PRIMARY KEY"
			}
			cmd.Printf("  %-20s %s%s\n", c.Name, c.Type, flags)
		}
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesInfoCmd)
}
