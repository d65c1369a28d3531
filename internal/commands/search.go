package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
	"github.com/budget-tracker-dev/budget-tracker/internal/query"
)

func newSearchCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "List transactions matching a query",
		Long: "List transactions whose category equals the query or whose\n" +
			"description contains the query's characters in order, best match first.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.svc.Load(); err != nil {
				return err
			}

			engine := query.NewEngine(a.svc.Store())
			matches := engine.Search(args[0])
			a.logger.Info("search", "query", args[0], "matches", len(matches))

			printMatches(cmd.OutOrStdout(), matches)
			return nil
		},
	}
}

var (
	dateColor     = color.New(color.FgYellow)
	categoryColor = color.New(color.FgCyan)
	expenseColor  = color.New(color.FgRed)
	incomeColor   = color.New(color.FgGreen)
)

func printMatches(w io.Writer, matches []model.Transaction) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}

	for _, txn := range matches {
		amountColor := incomeColor
		if txn.IsExpense() {
			amountColor = expenseColor
		}
		fmt.Fprintf(w, "%s  %-40s %s %s\n",
			dateColor.Sprint(txn.Date.Format("2006-01-02")),
			txn.Description,
			categoryColor.Sprintf("%-14s", txn.Category),
			amountColor.Sprintf("%12s", txn.Amount.String()),
		)
	}
}
