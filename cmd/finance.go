package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
	"github.com/manav03panchal/zenith/internal/parser"
	"github.com/manav03panchal/zenith/internal/validate"
)

// Finance add flags.
var financeAddFlagDate string

// financeCmd represents the finance command.
var financeCmd = &cobra.Command{
	Use:     "finance",
	Aliases: []string{"transactions", "money", "fin"},
	Short:   "Track income and expenses",
	Long: `List, add and delete transactions, and show totals.

Categories: Transport, Food, Subscriptions, Salary, Freelance, Other.

Examples:
  zenith finance
  zenith finance add expense Food 12.50 Lunch with Sam
  zenith finance add income Freelance 400 "Logo design" --date yesterday
  zenith finance delete 0190a1b2
  zenith finance summary`,
	RunE: runFinanceList,
}

var financeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions",
	Args:    cobra.NoArgs,
	RunE:    runFinanceList,
}

var financeAddCmd = &cobra.Command{
	Use:   "add income|expense CATEGORY AMOUNT DESCRIPTION...",
	Short: "Add a transaction",
	Args:  cobra.MinimumNArgs(4),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch len(args) {
		case 0:
			return completeValues(string(model.KindIncome), string(model.KindExpense))(cmd, args, toComplete)
		case 1:
			names := make([]string, len(model.FinanceCategories))
			for i, c := range model.FinanceCategories {
				names[i] = string(c)
			}
			return completeValues(names...)(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runFinanceAdd,
}

var financeDeleteCmd = &cobra.Command{
	Use:               "delete ID",
	Aliases:           []string{"rm"},
	Short:             "Delete a transaction",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTransactionIDs,
	RunE:              runFinanceDelete,
}

var financeSummaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"totals"},
	Short:   "Show income, expenses and balance",
	Args:    cobra.NoArgs,
	RunE:    runFinanceSummary,
}

func init() {
	financeAddCmd.Flags().StringVar(&financeAddFlagDate, "date", "today", "Transaction date, e.g. 2024-01-31 or yesterday")
	financeAddCmd.SetFlagErrorFunc(negativeAmountError)

	financeCmd.AddCommand(financeListCmd)
	financeCmd.AddCommand(financeAddCmd)
	financeCmd.AddCommand(financeDeleteCmd)
	financeCmd.AddCommand(financeSummaryCmd)
	rootCmd.AddCommand(financeCmd)
}

func runFinanceList(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	txs := rc.Store.Transactions.Get()
	if rc.IsJSON() {
		return rc.JSONFormatter().PrintTransactions(txs)
	}
	cli := rc.CLIFormatter()
	cli.PrintTransactions(txs)
	if len(txs) > 0 {
		cli.Println()
		cli.PrintSummary(finance.Totals(txs), finance.ByCategory(txs))
	}
	return nil
}

func runFinanceAdd(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	kind, err := model.ParseKind(args[0])
	if err != nil {
		return errors.NewFieldError(errors.ErrRequiredField, "type", args[0],
			"Invalid transaction type", "Use income or expense")
	}
	category, err := model.ParseFinanceCategory(args[1])
	if err != nil {
		return errors.NewFieldError(errors.ErrRequiredField, "category", args[1],
			"Invalid category", "Use Transport, Food, Subscriptions, Salary, Freelance or Other")
	}
	amount, err := parser.ParseAmount(args[2])
	if err != nil {
		return err
	}
	date, err := parser.ParseDate(financeAddFlagDate)
	if err != nil {
		return inputError(err)
	}
	description := validate.SanitizeLine(strings.Join(args[3:], " "))

	tx := model.NewTransaction(kind, category, amount, date, description)
	if err := validate.Transaction(tx); err != nil {
		return err
	}

	added, err := rc.Store.Transactions.Add(tx)
	if err != nil {
		return storeError(rc, err, "finance add", "")
	}
	return printAction(rc, "added", model.DomainFinance, added.ID, added,
		fmt.Sprintf("Added %s %s %s (%s)", added.Kind, rc.Formatter.Money(added.Amount), added.Description, output.ShortID(added.ID)))
}

func runFinanceDelete(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	removed, err := rc.Store.Transactions.Delete(args[0])
	if err != nil {
		return storeError(rc, err, "finance delete", args[0])
	}
	return printAction(rc, "deleted", model.DomainFinance, removed.ID, nil, "Deleted "+removed.Description)
}

func runFinanceSummary(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	txs := rc.Store.Transactions.Get()
	if rc.IsJSON() {
		return rc.JSONFormatter().PrintSummary(txs)
	}
	rc.CLIFormatter().PrintSummary(finance.Totals(txs), finance.ByCategory(txs))
	return nil
}

// negativeAmountError reports "-5" as a bad amount rather than as an unknown
// shorthand flag. Other flag errors pass through.
func negativeAmountError(cmd *cobra.Command, err error) error {
	_, arg, ok := strings.Cut(err.Error(), " in ")
	if !ok || !strings.HasPrefix(err.Error(), "unknown shorthand flag") {
		return err
	}
	if _, perr := parser.ParseAmount(arg); perr != nil {
		return err
	}
	return errors.NewFieldError(errors.ErrInvalidAmount, "amount", arg,
		"Amount must be greater than zero", "Record money going out as an expense with a positive amount")
}
