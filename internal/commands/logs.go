package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newLogsCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Show the app log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			data, err := os.ReadFile(a.logPath())
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("reading log: %w", err)
			}
			if len(data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no log entries yet")
				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
