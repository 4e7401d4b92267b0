// Command shortenctl manages links directly against the database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/sundayezeilo/linkshort/internal/app"
	"github.com/sundayezeilo/linkshort/internal/config"
	"github.com/sundayezeilo/linkshort/internal/db"
	"github.com/sundayezeilo/linkshort/internal/shortener"
)

// env is populated by the root command before any subcommand runs.
type env struct {
	dbConfig *config.DatabaseConfig
	logger   *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	var logLevel string

	root := &cobra.Command{
		Use:          "shortenctl",
		Short:        "Manage short links from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.LoadEnv()

			cfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			e.dbConfig = cfg
			e.logger = app.SetupLogger(logLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newMigrateCmd(e),
		newCreateCmd(e),
		newListCmd(e),
	)
	return root
}

// withService opens a pool, runs fn with a service on top of it and closes
// the pool afterwards.
func (e *env) withService(ctx context.Context, fn func(shortener.Service) error) error {
	pool, err := app.ConnectDatabase(ctx, e.dbConfig, e.logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(newService(pool))
}

func newService(pool *pgxpool.Pool) shortener.Service {
	return shortener.NewService(shortener.NewRepository(db.NewStore(pool)), nil)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
