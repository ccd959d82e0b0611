package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard with one tab per area.

Keyboard Controls:
  tab / shift+tab - Next / previous tab
  1-4             - Jump to a tab
  i               - Ask for an insight on the current tab
  j / k           - Move the agenda selection
  space           - Toggle the selected agenda item
  r               - Reload data
  q               - Quit dashboard

Examples:
  zenith dashboard
  zenith tui`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	rc.Store.Load()

	config := tui.DashboardConfig{
		Context:  cmd.Context(),
		Store:    rc.Store,
		Insight:  rc.Insight,
		Currency: rc.Config.Finance.Currency,
	}

	// Run the TUI dashboard
	return tui.Run(config)
}
