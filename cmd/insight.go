package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/insight"
	"github.com/manav03panchal/zenith/internal/logging"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
)

// insightKinds maps insight names to the domain they read.
var insightKinds = map[string]model.Domain{
	"completion": model.DomainAgenda,
	"momentum":   model.DomainHighlights,
	"journal":    model.DomainJournal,
	"reflection": model.DomainJournal,
	"spending":   model.DomainFinance,
}

// insightTitles are the headings printed above each insight.
var insightTitles = map[model.Domain]string{
	model.DomainAgenda:     "Completion",
	model.DomainHighlights: "Momentum",
	model.DomainJournal:    "Reflection",
	model.DomainFinance:    "Spending",
}

// insightCmd represents the insight command.
var insightCmd = &cobra.Command{
	Use:     "insight [completion|momentum|journal|spending|all]",
	Aliases: []string{"insights", "ai"},
	Short:   "Ask the AI for a short insight",
	Long: `Ask the configured Gemini model for a one-paragraph insight about
one area of your day, or all four at once.

Set ZENITH_API_KEY (or GEMINI_API_KEY) or ai.api_key in the config file.
Insights are never stored.

Examples:
  zenith insight completion
  zenith insight spending
  zenith insight all --format json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"completion", "momentum", "journal", "spending", "all"},
	RunE:      runInsight,
}

func init() {
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	domains, err := insightDomains(args)
	if err != nil {
		return err
	}

	results := make([]output.InsightOutput, len(domains))
	g, gctx := errgroup.WithContext(cmd.Context())
	for i, d := range domains {
		task := insight.NewTask()
		g.Go(func() error {
			done := task.Run(gctx, func(c context.Context) string {
				return rc.Insight(c, d)
			})
			select {
			case text := <-done:
				results[i] = output.InsightOutput{Domain: d, Text: text}
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return errors.NewSystemErrorWithOp("insight", "insight request interrupted", err)
	}
	logging.DebugLog("insights complete", logging.KeyCount, len(results))

	if rc.IsJSON() {
		return rc.JSONFormatter().PrintInsights(results)
	}
	cli := rc.CLIFormatter()
	for i, r := range results {
		if i > 0 {
			cli.Println()
		}
		cli.PrintInsight(insightTitles[r.Domain], r.Text)
	}
	return nil
}

// insightDomains resolves the command argument to the domains to query.
func insightDomains(args []string) ([]model.Domain, error) {
	if len(args) == 0 || args[0] == "all" {
		return model.Domains, nil
	}
	if d, ok := insightKinds[args[0]]; ok {
		return []model.Domain{d}, nil
	}
	d, err := model.ParseDomain(args[0])
	if err != nil {
		return nil, errors.NewFieldError(errors.ErrRequiredField, "insight", args[0],
			"Unknown insight", "Use completion, momentum, journal, spending or all")
	}
	return []model.Domain{d}, nil
}
