// Package cli exposes the cash flow computations as a command-line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/core/services"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/SscSPs/cashflow_ledger/internal/platform/config"
	"github.com/SscSPs/cashflow_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashflow_ledger/pkg/database"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// ServiceFactory builds the service container for one command run. The
// returned cleanup func is always non-nil when err is nil.
type ServiceFactory func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

// postgresFactory wires services against the configured database.
func postgresFactory(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	return container, func() { database.ClosePgxPool(pool) }, nil
}

type rootOptions struct {
	companyID string
	output    string
	verbose   bool
}

// NewRootCommand assembles the command tree around factory.
func NewRootCommand(factory ServiceFactory) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Cash flow ledger reports from the command line",
		Long: `cashflow computes the running balance, summary, indicators, alerts and
monthly income statement of a company from its payables, receivables and
manual entries.

The database is configured through the same environment variables as the
API server (PGSQL_URL, BUSINESS_TIMEZONE, ...).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "json" && opts.output != "yaml" {
				return fmt.Errorf("unsupported output format %q (use json or yaml)", opts.output)
			}
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(middleware.WithLogger(cmd.Context(), logger.With(slog.String("command", cmd.Name()))))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.companyID, "company", "", "Company ID (empty for every company)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "Output format: json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newCashFlowCmd(factory, opts),
		newSummaryCmd(factory, opts),
		newKPIsCmd(factory, opts),
		newMovementsCmd(factory, opts),
		newAlertsCmd(factory, opts),
		newDRECmd(factory, opts),
		newExpandRecurrenceCmd(factory, opts),
		newMigrateCmd(),
		newTokenCmd(),
	)
	return rootCmd
}

// Execute runs the CLI against the configured database.
func Execute() {
	if err := NewRootCommand(postgresFactory).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
