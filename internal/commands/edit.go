package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budget-tracker-dev/budget-tracker/internal/editor"
)

func newEditCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the ledger file in your editor",
		Long: "Open the ledger CSV in the configured editor ($EDITOR, nano as a\n" +
			"last resort). The file is validated after the edit session ends.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			// Deliberately no Load before the edit: the editor is also
			// how a broken file gets fixed.
			ed := editor.Resolve(a.cfg.Editor)
			a.logger.Info("editing ledger", "editor", ed, "file", a.svc.Path())

			if err := editor.Open(ed, a.svc.Path()); err != nil {
				return err
			}

			if err := a.svc.Load(); err != nil {
				a.logger.Error("ledger invalid after edit", "err", err)
				return fmt.Errorf("the edited file does not parse: %w", err)
			}

			a.logger.Info("ledger edited", "transactions", a.svc.Store().Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger OK: %d transactions\n", a.svc.Store().Len())
			return nil
		},
	}
}
