package cli

import (
	"fmt"
	"time"

	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/platform/config"
	"github.com/SscSPs/cashflow_ledger/internal/utils"
	"github.com/SscSPs/cashflow_ledger/internal/utils/dates"
	"github.com/SscSPs/cashflow_ledger/pkg/database"
	"github.com/spf13/cobra"
)

// windowFlags selects the window of the cash flow commands.
type windowFlags struct {
	period string
	start  string
	end    string
}

func (w *windowFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&w.period, "period", "", "daily, weekly or monthly (default monthly)")
	cmd.Flags().StringVar(&w.start, "start", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&w.end, "end", "", "Window end (YYYY-MM-DD)")
}

func (w *windowFlags) params(companyID string) (dto.CashFlowParams, error) {
	switch w.period {
	case "", "daily", "weekly", "monthly":
	default:
		return dto.CashFlowParams{}, fmt.Errorf("invalid period %q", w.period)
	}
	for _, d := range []string{w.start, w.end} {
		if d != "" && !dates.IsValid(d) {
			return dto.CashFlowParams{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", d)
		}
	}
	return dto.CashFlowParams{CompanyID: companyID, Period: w.period, StartDate: w.start, EndDate: w.end}, nil
}

// withServices runs fn with a freshly built container and releases it after.
func withServices(cmd *cobra.Command, factory ServiceFactory, fn func(*portssvc.ServiceContainer) (any, error)) error {
	container, cleanup, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := fn(container)
	if err != nil {
		return err
	}
	return render(cmd, result)
}

func newCashFlowCmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	var w windowFlags
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Print the daily running balance",
		Example: `  cashflow cashflow --company acme --period weekly
  cashflow cashflow --start 2024-03-01 --end 2024-03-31 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := w.params(opts.companyID)
			if err != nil {
				return err
			}
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				return s.CashFlow.GetCashFlow(cmd.Context(), params.ToQuery())
			})
		},
	}
	w.bind(cmd)
	return cmd
}

func newSummaryCmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	var w windowFlags
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print confirmed and pending totals and balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := w.params(opts.companyID)
			if err != nil {
				return err
			}
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				return s.CashFlow.GetSummary(cmd.Context(), params.ToQuery())
			})
		},
	}
	w.bind(cmd)
	return cmd
}

func newKPIsCmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	var w windowFlags
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Print the cash flow indicators",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := w.params(opts.companyID)
			if err != nil {
				return err
			}
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				return s.CashFlow.GetKPIs(cmd.Context(), params.ToQuery())
			})
		},
	}
	w.bind(cmd)
	return cmd
}

func newMovementsCmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	var w windowFlags
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Print the merged ledger of the window",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := w.params(opts.companyID)
			if err != nil {
				return err
			}
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				movements, err := s.CashFlow.GetMovements(cmd.Context(), params.ToQuery())
				if err != nil {
					return nil, err
				}
				return dto.MovementsResponse{Movements: movements}, nil
			})
		},
	}
	w.bind(cmd)
	return cmd
}

func newAlertsCmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Print negative balance, overdue and upcoming obligation alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				alerts, err := s.Alert.GetAlerts(cmd.Context(), opts.companyID)
				if err != nil {
					return nil, err
				}
				return dto.AlertsResponse{Alerts: alerts, Count: len(alerts)}, nil
			})
		},
	}
}

func newDRECmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	var year, month int
	cmd := &cobra.Command{
		Use:   "dre",
		Short: "Print the monthly income statement compared with the previous month",
		Example: `  cashflow dre --company acme --year 2024 --month 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				return s.DRE.GetDRE(cmd.Context(), opts.companyID, year, time.Month(month))
			})
		},
	}
	now := time.Now()
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year of the statement")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month of the statement (1-12)")
	return cmd
}

func newExpandRecurrenceCmd(factory ServiceFactory, opts *rootOptions) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "expand-recurrence PAYABLE_ID...",
		Short: "Generate the missing instances of recurring payables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, factory, func(s *portssvc.ServiceContainer) (any, error) {
				results := make([]dto.ExpandRecurrenceResponse, 0, len(args))
				for _, payableID := range args {
					created, err := s.Recurrence.ExpandPayable(cmd.Context(), payableID, userID)
					if err != nil {
						return nil, fmt.Errorf("payable %s: %w", payableID, err)
					}
					results = append(results, dto.ExpandRecurrenceResponse{PayableID: payableID, Created: created})
				}
				return results, nil
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "cli", "User ID recorded on generated payables")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return database.RunMigrations(cfg.DatabaseURL, path, loggerFrom(cmd))
		},
	}
	cmd.Flags().StringVar(&path, "path", database.DefaultMigrationsPath, "Migration source URL")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for calling a local API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			token, err := utils.GenerateAccessToken(userID, cfg.JWTSecret, cfg.JWTIssuer, ttl, time.Now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Subject of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}
