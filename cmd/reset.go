package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
)

// resetCmd restores one domain to its first-run contents.
var resetCmd = &cobra.Command{
	Use:   "reset DOMAIN",
	Short: "Restore one area to its starting contents",
	Long: `Replace the stored data of one area (agenda, highlights, journal or
finance) with the sample data written on first run.

Examples:
  zenith reset highlights
  zenith reset finance`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDomains,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc := runtimeOf(cmd)
		d, err := model.ParseDomain(args[0])
		if err != nil {
			return errors.NewFieldError(errors.ErrRequiredField, "domain", args[0],
				"Unknown domain", "Use agenda, highlights, journal or finance")
		}
		if err := rc.Store.Reset(d); err != nil {
			return storeError(rc, err, "reset", "")
		}
		return printAction(rc, "reset", d, "", nil, d.Title()+" restored")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
