package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/budget-tracker-dev/budget-tracker/internal/ledger"
	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

func newAddCommand(dataDir *string) *cobra.Command {
	var date, description, category, amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: "Record a transaction. With no flags, every field is prompted for\n" +
			"interactively. Negative amounts are expenses, non-negative amounts income.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.svc.Load(); err != nil {
				return err
			}

			anyFlag := cmd.Flags().Changed("date") || cmd.Flags().Changed("description") ||
				cmd.Flags().Changed("category") || cmd.Flags().Changed("amount")

			var txn model.Transaction
			if anyFlag {
				if date == "" {
					date = time.Now().Format("2006-01-02")
				}
				txn, err = ledger.NewTransaction(date, description, category, amount)
			} else {
				txn, err = promptTransaction(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Categories)
			}
			if err != nil {
				return err
			}

			if err := a.svc.Append(txn); err != nil {
				return err
			}

			a.logger.Info("added transaction",
				"date", txn.Date.Format("2006-01-02"),
				"category", txn.Category,
				"amount", txn.Amount.String(),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q (%s) to the ledger\n",
				txn.Amount.String(), txn.Description, txn.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD or YYYY/MM/DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount, negative for expenses")

	return cmd
}

// promptTransaction reads every field from in, re-prompting on invalid
// date or amount. An empty date means today.
func promptTransaction(in io.Reader, out io.Writer, categories []string) (model.Transaction, error) {
	sc := bufio.NewScanner(in)

	date, err := promptDate(sc, out)
	if err != nil {
		return model.Transaction{}, err
	}

	description, err := prompt(sc, out, "Enter description: ")
	if err != nil {
		return model.Transaction{}, err
	}

	category, err := prompt(sc, out, fmt.Sprintf("Enter category (%s): ", strings.Join(categories, ", ")))
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := promptAmount(sc, out)
	if err != nil {
		return model.Transaction{}, err
	}

	return ledger.NewTransaction(date, description, category, amount)
}

func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(sc.Text()), nil
}

func promptDate(sc *bufio.Scanner, out io.Writer) (string, error) {
	for {
		input, err := prompt(sc, out, "Enter date (YYYY-MM-DD or YYYY/MM/DD, empty for today): ")
		if err != nil {
			return "", err
		}
		if input == "" {
			return time.Now().Format("2006-01-02"), nil
		}
		if _, err := ledger.ParseDate(input); err == nil {
			return input, nil
		}
		fmt.Fprintln(out, "Invalid date. Please use YYYY-MM-DD or YYYY/MM/DD.")
	}
}

func promptAmount(sc *bufio.Scanner, out io.Writer) (string, error) {
	for {
		input, err := prompt(sc, out, "Enter amount (negative for an expense): ")
		if err != nil {
			return "", err
		}
		if _, err := ledger.ParseAmount(input); err == nil {
			return input, nil
		}
		fmt.Fprintln(out, "Invalid amount. Please enter a number.")
	}
}
