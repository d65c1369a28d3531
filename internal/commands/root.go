package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budget-tracker-dev/budget-tracker/internal/buildinfo"
	"github.com/budget-tracker-dev/budget-tracker/internal/query"
	"github.com/budget-tracker-dev/budget-tracker/internal/tui"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. Running it without a subcommand opens the dashboard.
func NewRootCommand() *cobra.Command {
	var dataDir string
	var searchQuery string

	rootCmd := &cobra.Command{
		Use:     "budget-tracker",
		Short:   "Personal expense tracker with a terminal dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(dataDir, searchQuery)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.local/share/budget-tracker)")
	rootCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "show only transactions matching this query")

	rootCmd.AddCommand(newAddCommand(&dataDir))
	rootCmd.AddCommand(newEditCommand(&dataDir))
	rootCmd.AddCommand(newSearchCommand(&dataDir))
	rootCmd.AddCommand(newLogsCommand(&dataDir))

	return rootCmd
}

func runDashboard(dataDir, searchQuery string) error {
	a, err := openApp(dataDir)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.svc.Load(); err != nil {
		a.logger.Error("loading ledger", "err", err)
		return err
	}

	engine := query.NewEngine(a.svc.Store())
	txns := a.svc.Store().All()
	if searchQuery != "" {
		txns = engine.Search(searchQuery)
	}

	a.logger.Info("opening dashboard", "transactions", len(txns), "search", searchQuery)
	return tui.Run(tui.New(txns, engine.DashboardData(), searchQuery))
}
