package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
	"github.com/manav03panchal/zenith/internal/parser"
	"github.com/manav03panchal/zenith/internal/runtime"
	"github.com/manav03panchal/zenith/internal/validate"
)

// Agenda add flags.
var (
	agendaAddFlagAt       string
	agendaAddFlagDuration string
	agendaAddFlagType     string
)

// agendaCmd represents the agenda command.
var agendaCmd = &cobra.Command{
	Use:     "agenda",
	Aliases: []string{"tasks", "a"},
	Short:   "Manage today's agenda",
	Long: `List the agenda, add items, and mark them done.

Items are kept in start-time order. Ids can be shortened to any unique prefix.

Examples:
  zenith agenda
  zenith agenda add "Write report" --at 14:00 --for 90m --type task
  zenith agenda add "1:1 with Sam" --at 3pm --for 30 --type meeting
  zenith agenda done 0190a1b2
  zenith agenda reason 2 "meetings ran long"
  zenith agenda delete 0190a1b2`,
	RunE: runAgendaList,
}

var agendaListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List agenda items",
	Args:    cobra.NoArgs,
	RunE:    runAgendaList,
}

var agendaAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add an agenda item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAgendaAdd,
}

var agendaDoneCmd = &cobra.Command{
	Use:               "done ID",
	Aliases:           []string{"complete"},
	Short:             "Mark an item completed",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAgendaIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAgendaCompleted(runtimeOf(cmd), args[0], true)
	},
}

var agendaUndoCmd = &cobra.Command{
	Use:               "undo ID",
	Aliases:           []string{"reopen"},
	Short:             "Mark an item not completed",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAgendaIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAgendaCompleted(runtimeOf(cmd), args[0], false)
	},
}

var agendaReasonCmd = &cobra.Command{
	Use:               "reason ID [REASON...]",
	Short:             "Record why an item was not achieved (empty clears it)",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeAgendaIDs,
	RunE:              runAgendaReason,
}

var agendaDeleteCmd = &cobra.Command{
	Use:               "delete ID",
	Aliases:           []string{"rm"},
	Short:             "Delete an agenda item",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAgendaIDs,
	RunE:              runAgendaDelete,
}

func init() {
	agendaAddCmd.Flags().StringVarP(&agendaAddFlagAt, "at", "t", "", "Start time, e.g. 09:30 or 2pm (required)")
	agendaAddCmd.Flags().StringVarP(&agendaAddFlagDuration, "for", "d", "30m", "Duration, e.g. 45, 45m or 1h30m")
	agendaAddCmd.Flags().StringVarP(&agendaAddFlagType, "type", "y", string(model.CategoryTask), "Type: task, meeting or break")
	_ = agendaAddCmd.MarkFlagRequired("at")
	_ = agendaAddCmd.RegisterFlagCompletionFunc("type",
		completeValues(string(model.CategoryTask), string(model.CategoryMeeting), string(model.CategoryBreak)))

	agendaCmd.AddCommand(agendaListCmd)
	agendaCmd.AddCommand(agendaAddCmd)
	agendaCmd.AddCommand(agendaDoneCmd)
	agendaCmd.AddCommand(agendaUndoCmd)
	agendaCmd.AddCommand(agendaReasonCmd)
	agendaCmd.AddCommand(agendaDeleteCmd)
	rootCmd.AddCommand(agendaCmd)
}

func runAgendaList(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	items := rc.Store.Agenda.Get()
	if rc.IsJSON() {
		return rc.JSONFormatter().PrintAgenda(items)
	}
	rc.CLIFormatter().PrintAgenda(items)
	return nil
}

func runAgendaAdd(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	title := validate.SanitizeLine(strings.Join(args, " "))
	if err := validate.Title(title); err != nil {
		return err
	}

	clock, err := parser.ParseClock(agendaAddFlagAt)
	if err != nil {
		return inputError(err)
	}
	minutes, err := parser.ParseMinutes(agendaAddFlagDuration)
	if err != nil {
		return inputError(err)
	}
	category, err := model.ParseCategory(agendaAddFlagType)
	if err != nil {
		return validate.Category(model.Category(agendaAddFlagType))
	}

	item := model.NewAgendaItem(title, category, clock, minutes)
	if err := validate.AgendaItem(item); err != nil {
		return err
	}

	added, err := rc.Store.Agenda.Add(item)
	if err != nil {
		return storeError(rc, err, "agenda add", "")
	}
	return printAction(rc, "added", model.DomainAgenda, added.ID, added,
		fmt.Sprintf("Added %s %s (%s)", added.StartTime, added.Title, output.ShortID(added.ID)))
}

func setAgendaCompleted(rc *runtime.Context, id string, completed bool) error {
	item, err := rc.Store.Agenda.SetCompleted(id, completed)
	if err != nil {
		return storeError(rc, err, "agenda done", id)
	}
	status, verb := "completed", "Completed"
	if !completed {
		status, verb = "reopened", "Reopened"
	}
	return printAction(rc, status, model.DomainAgenda, item.ID, item, verb+" "+item.Title)
}

func runAgendaReason(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	reason := validate.SanitizeLine(strings.Join(args[1:], " "))
	item, err := rc.Store.Agenda.SetReason(args[0], reason)
	if err != nil {
		return storeError(rc, err, "agenda reason", args[0])
	}
	message := "Recorded reason for " + item.Title
	if !item.HasReason() {
		message = "Cleared reason for " + item.Title
	}
	return printAction(rc, "updated", model.DomainAgenda, item.ID, item, message)
}

func runAgendaDelete(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	removed, err := rc.Store.Agenda.Delete(args[0])
	if err != nil {
		return storeError(rc, err, "agenda delete", args[0])
	}
	return printAction(rc, "deleted", model.DomainAgenda, removed.ID, nil, "Deleted "+removed.Title)
}
