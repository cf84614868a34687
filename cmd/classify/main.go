package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify aircraft sale titles offline",
		Long: `classify matches free-text aircraft sale titles against the manufacturer
and model catalog without a database.

Examples:
  classify title "DG 800 B" --category glider
  classify title "ASH 25 Mi" --explain
  classify feed offers.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")

			var l slog.Level
			if err := l.UnmarshalText([]byte(level)); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}

			slog.SetLogLoggerLevel(l)

			return nil
		},
	}

	cmd.PersistentFlags().String("catalog", os.Getenv("CATALOG_PATH"), "catalog TOML file (default: bundled catalog)")
	cmd.PersistentFlags().Int("workers", 0, "parallel workers for feeds (default: GOMAXPROCS)")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(titleCmd())
	cmd.AddCommand(feedCmd())

	return cmd
}

// newClassifier builds a classifier from the persistent flags.
func newClassifier(cmd *cobra.Command) (*classifier.Classifier, error) {
	path, _ := cmd.Flags().GetString("catalog")
	workers, _ := cmd.Flags().GetInt("workers")

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return classifier.New(cat, classifier.WithWorkers(workers)), nil
}
