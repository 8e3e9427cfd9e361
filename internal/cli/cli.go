//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-retailgen.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/seasonality"
	"github.com/pgEdge/pgedge-retailgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	dbPath     string
	connection string
	logLevel   string
	seed       uint64

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-retailgen",
		Short: "Synthetic retail dataset generator",
		Long: `pgedge-retailgen generates a fictitious retail dataset (products,
stores, customers, a day calendar, sales transactions, suppliers,
feedback and loyalty points) and appends it to a SQLite or PostgreSQL
database for analytics demos.

The whole dataset is derived from one seeded random source, so the same
seed and configuration always produce the same rows.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./config/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "",
		"SQLite database file")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string (overrides --db-path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"seed of the random source (default: data_generation.seed)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(backupCmd)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if connection != "" {
		cfg.Database.Connection = connection
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.DataGeneration.Seed = seed
	}

	// Reinitialize logger with config
	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: true,
		Dir:    cfg.Logging.Path,
		App:    cfg.Spark.AppName,
	}); err != nil {
		return err
	}

	return nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logging.Info().
				Str("signal", sig.String()).
				Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// openStore validates the database settings and opens the store.
func openStore(ctx context.Context) (db.Store, error) {
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	store, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available seasonality profiles",
	Long: `List the seasonality profiles that shape the number of sales
transactions per day and the quantity sold per transaction.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available seasonality profiles:")
		cmd.Println()
		for _, name := range seasonality.List() {
			profile, _ := seasonality.Get(name)
			cmd.Printf("  %-15s - %s\n", name, profile.Description())
		}
	},
}
