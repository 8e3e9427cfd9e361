package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/pipeline"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

var generateSample int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset without loading it",
	Long: `Run data generation only and print every table with its row count
and a few sample rows. Nothing is written to the database.

Example:
  pgedge-retailgen generate --seed 7 --sample 5`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateSample, "sample", 3,
		"number of sample rows to print per table")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tables, err := pipeline.GenerateTables(cfg)
	if err != nil {
		return err
	}

	for _, name := range retail.TableOrder {
		printTable(cmd, tables[name], generateSample)
	}
	return nil
}

func printTable(cmd *cobra.Command, t *datagen.Table, sample int) {
	cmd.Printf("%s (%d rows)\n", t.Name, t.Len())
	cmd.Printf("  %v\n", t.Columns)
	for _, row := range t.Rows[:min(max(sample, 0), t.Len())] {
		cmd.Printf("  %s\n", formatRow(row))
	}
	cmd.Println()
}

func formatRow(row []any) string {
	values := make([]string, len(row))
	for i, v := range row {
		values[i] = formatValue(v)
	}
	return strings.Join(values, " | ")
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case time.Time:
		return x.Format(db.DateLayout)
	default:
		return fmt.Sprint(x)
	}
}
