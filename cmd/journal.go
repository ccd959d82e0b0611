package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/validate"
)

// Journal write flags.
var (
	journalFlagMood   string
	journalFlagReason string
	journalFlagNotes  string
)

// journalCmd represents the journal command.
var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"j"},
	Short:   "Today's mood and notes",
	Long: `Show or write today's journal entry.

With no flags on a terminal, 'write' opens an interactive form. Only the
fields you pass are changed. Use '--notes -' to read notes from stdin.

Examples:
  zenith journal
  zenith journal write --mood happy --reason "sunny day"
  zenith journal write --notes "Long walk after work"
  echo "Slept badly" | zenith journal write --mood sad --notes -`,
	RunE: runJournalShow,
}

var journalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the journal entry",
	Args:  cobra.NoArgs,
	RunE:  runJournalShow,
}

var journalWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the journal entry",
	Args:  cobra.NoArgs,
	RunE:  runJournalWrite,
}

func init() {
	journalWriteCmd.Flags().StringVarP(&journalFlagMood, "mood", "m", "", "Mood: awful, sad, neutral, happy, ecstatic")
	journalWriteCmd.Flags().StringVarP(&journalFlagReason, "reason", "r", "", "Why you feel this way")
	journalWriteCmd.Flags().StringVarP(&journalFlagNotes, "notes", "n", "", "Free-form notes ('-' reads stdin)")

	moods := make([]string, len(model.Moods))
	for i, m := range model.Moods {
		moods[i] = m.String()
	}
	_ = journalWriteCmd.RegisterFlagCompletionFunc("mood", completeValues(moods...))

	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalWriteCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	entry := rc.Store.Journal.Get()
	if rc.IsJSON() {
		return rc.JSONFormatter().PrintJournal(entry)
	}
	rc.CLIFormatter().PrintJournal(entry)
	return nil
}

func runJournalWrite(cmd *cobra.Command, args []string) error {
	rc := runtimeOf(cmd)
	entry := rc.Store.Journal.Get()
	flags := cmd.Flags()

	if !anyChanged(flags, "mood", "reason", "notes") {
		if rc.IsJSON() || !isTerminal(cmd.InOrStdin()) {
			return errors.NewUserError("Nothing to write",
				"Pass --mood, --reason or --notes, or run on a terminal for the form")
		}
		if err := journalForm(&entry); err != nil {
			return err
		}
	} else {
		if flags.Changed("mood") {
			mood, err := model.ParseMood(journalFlagMood)
			if err != nil {
				return errors.NewFieldError(errors.ErrRequiredField, "mood", journalFlagMood,
					"Invalid mood", "Use awful, sad, neutral, happy or ecstatic")
			}
			entry.Mood = mood
		}
		if flags.Changed("reason") {
			entry.MoodReason = validate.SanitizeLine(journalFlagReason)
		}
		if flags.Changed("notes") {
			notes := journalFlagNotes
			if notes == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.NewSystemErrorWithOp("journal write", "cannot read notes from stdin", err)
				}
				notes = string(data)
			}
			entry.Notes = validate.SanitizeNotes(notes)
		}
	}

	if err := validate.Notes(entry.Notes); err != nil {
		return err
	}
	if err := rc.Store.Journal.Set(entry); err != nil {
		return storeError(rc, err, "journal write", "")
	}
	return printAction(rc, "updated", model.DomainJournal, "", entry, "Journal saved ("+entry.Mood.String()+")")
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// journalForm edits entry in place through an interactive form.
func journalForm(entry *model.JournalEntry) error {
	mood := entry.Mood.String()
	reason := entry.MoodReason
	notes := entry.Notes

	options := make([]huh.Option[string], len(model.Moods))
	for i, m := range model.Moods {
		options[i] = huh.NewOption(m.Emoji()+" "+m.String(), m.String())
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mood").
				Options(options...).
				Value(&mood),
			huh.NewInput().
				Title("Because").
				Placeholder("optional").
				Value(&reason),
			huh.NewText().
				Title("Notes").
				Value(&notes).
				Validate(validate.Notes),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.NewUserError("Journal not saved", "")
		}
		return errors.NewSystemErrorWithOp("journal write", "form failed", err)
	}

	parsed, err := model.ParseMood(mood)
	if err != nil {
		return err
	}
	entry.Mood = parsed
	entry.MoodReason = validate.SanitizeLine(reason)
	entry.Notes = validate.SanitizeNotes(notes)
	return nil
}
