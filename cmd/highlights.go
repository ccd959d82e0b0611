package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/runtime"
	"github.com/manav03panchal/zenith/internal/validate"
)

// highlightsCmd represents the highlights command.
var highlightsCmd = &cobra.Command{
	Use:     "highlights",
	Aliases: []string{"achievements", "hl"},
	Short:   "Log today's three highlights",
	Long: `Show or edit the three highlight slots of the day.

Examples:
  zenith highlights
  zenith highlights set 1 "Shipped the release"
  zenith highlights clear 2`,
	RunE: runHighlightsList,
}

var highlightsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List highlight slots",
	Args:    cobra.NoArgs,
	RunE:    runHighlightsList,
}

var highlightsSetCmd = &cobra.Command{
	Use:       "set N TEXT...",
	Short:     "Set the text of slot N (1-3)",
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"1", "2", "3"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return setHighlight(runtimeOf(cmd), args[0], validate.SanitizeLine(strings.Join(args[1:], " ")))
	},
}

var highlightsClearCmd = &cobra.Command{
	Use:       "clear N",
	Short:     "Clear slot N (1-3)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"1", "2", "3"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return setHighlight(runtimeOf(cmd), args[0], "")
	},
}

func init() {
	highlightsCmd.AddCommand(highlightsListCmd)
	highlightsCmd.AddCommand(highlightsSetCmd)
	highlightsCmd.AddCommand(highlightsClearCmd)
	rootCmd.AddCommand(highlightsCmd)
}

func runHighlightsList(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	achievements := rc.Store.Achievements.Get()
	if rc.IsJSON() {
		return rc.JSONFormatter().PrintHighlights(achievements)
	}
	rc.CLIFormatter().PrintHighlights(achievements)
	return nil
}

func setHighlight(rc *runtime.Context, slot, text string) error {
	position, err := strconv.Atoi(slot)
	if err != nil {
		return errors.NewFieldError(errors.ErrSlotOutOfRange, "slot", slot, "Invalid highlight slot", "")
	}
	if err := validate.Highlight(text); err != nil {
		return err
	}

	a, err := rc.Store.Achievements.SetText(position, text)
	if err != nil {
		return storeError(rc, err, "highlights set", slot)
	}

	message := fmt.Sprintf("Highlight %d: %s", position, a.Text)
	if !a.Filled() {
		message = fmt.Sprintf("Cleared highlight %d", position)
	}
	return printAction(rc, "updated", model.DomainHighlights, a.ID, a, message)
}
