package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/model"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagBackup bool
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "dump"},
	Short:   "Export transactions or back up everything",
	Long: `Export transactions as CSV or JSON, or create a full backup of all
four areas.

Examples:
  zenith export
  zenith export -o transactions.csv
  zenith export --format json
  zenith export --backup -o backup.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "csv", "Output format: csv, json")
	exportCmd.Flags().BoolVarP(&exportFlagBackup, "backup", "b", false, "Full backup of every domain (JSON)")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	_ = exportCmd.RegisterFlagCompletionFunc("format", completeValues("csv", "json"))

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	if !exportFlagBackup && exportFlagFormat != "csv" && exportFlagFormat != "json" {
		return errors.NewFieldError(errors.ErrRequiredField, "format", exportFlagFormat,
			"Invalid export format", "Use csv or json")
	}

	// Determine output destination
	var w io.Writer = cmd.OutOrStdout()
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return errors.NewSystemErrorWithOp("export", "cannot create "+exportFlagOutput, err)
		}
		defer f.Close()
		w = f
	}

	var count int
	switch {
	case exportFlagBackup:
		backup := rc.Store.Snapshot()
		if err := writeJSON(w, backup); err != nil {
			return err
		}
		count = len(backup.Agenda) + len(backup.Achievements) + 1 + len(backup.Transactions)
	case exportFlagFormat == "json":
		txs := rc.Store.Transactions.Get()
		out := struct {
			Version      string              `json:"version"`
			ExportedAt   string              `json:"exported_at"`
			Currency     string              `json:"currency"`
			Transactions []model.Transaction `json:"transactions"`
			Count        int                 `json:"count"`
		}{
			Version:      "1",
			ExportedAt:   time.Now().Format(time.RFC3339),
			Currency:     rc.Formatter.Currency,
			Transactions: txs,
			Count:        len(txs),
		}
		if out.Transactions == nil {
			out.Transactions = []model.Transaction{}
		}
		if err := writeJSON(w, out); err != nil {
			return err
		}
		count = len(txs)
	default:
		txs := rc.Store.Transactions.Get()
		if err := finance.WriteCSV(w, txs); err != nil {
			return errors.NewSystemErrorWithOp("export", "cannot write CSV", err)
		}
		count = len(txs)
	}

	// Print summary if writing to file
	if exportFlagOutput != "" && !rc.IsJSON() {
		what := "Exported"
		if exportFlagBackup {
			what = "Backup created"
		}
		rc.CLIFormatter().Success(fmt.Sprintf("%s: %s (%d records)", what, exportFlagOutput, count))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return errors.NewSystemErrorWithOp("export", "cannot write JSON", err)
	}
	return nil
}
