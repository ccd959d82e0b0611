package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/zenith/internal/config"
	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/insight"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
	"github.com/manav03panchal/zenith/internal/runtime"
	"github.com/manav03panchal/zenith/internal/storage"
)

// testEnv runs commands in-process against a database in a temp directory.
type testEnv struct {
	t     *testing.T
	dir   string
	stdin string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ZENITH_DATABASE", filepath.Join(dir, "db"))
	t.Setenv("ZENITH_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("ZENITH_CURRENCY", "")
	return &testEnv{t: t, dir: dir}
}

// run executes zenith with args and returns stdout, stderr and the error.
func (e *testEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(e.stdin))
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(e.dir, "config.yaml"), "--color", "never"}, args...))

	err := ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// mustRun executes zenith and fails the test on error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.run(args...)
	require.NoError(e.t, err, "stderr: %s", stderr)
	return stdout
}

// runJSON executes zenith with --format json and decodes stdout into v.
func (e *testEnv) runJSON(v any, args ...string) {
	e.t.Helper()
	stdout := e.mustRun(append([]string{"--format", "json"}, args...)...)
	require.NoError(e.t, json.Unmarshal([]byte(stdout), v), "stdout: %s", stdout)
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// =============================================================================
// Root Tests
// =============================================================================

func TestOverviewFirstRun(t *testing.T) {
	env := setup(t)

	out := env.mustRun()
	assert.Contains(t, out, "0/3 completed")
	assert.Contains(t, out, "next: 09:00 Daily Standup")
	assert.Contains(t, out, "0/3 logged")
	assert.Contains(t, out, "$250.00 in, $15.00 out")
}

func TestOverviewJSON(t *testing.T) {
	env := setup(t)

	var resp output.OverviewResponse
	env.runJSON(&resp)
	assert.Equal(t, 3, resp.Agenda.Total)
	assert.Equal(t, model.MoodNeutral, resp.Journal.Mood)
	assert.Equal(t, "235.00", resp.Summary.Balance)
}

func TestInvalidGlobalFlags(t *testing.T) {
	env := setup(t)

	_, stderr, err := env.run("--format", "yaml")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.Contains(t, stderr, "Use cli, json or plain")
}

func TestVersion(t *testing.T) {
	env := setup(t)
	out := env.mustRun("version")
	assert.Contains(t, out, "zenith dev")
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	env := setup(t)

	env.mustRun("highlights", "set", "1", "Persisted")

	db, err := storage.Open(storage.Options{Path: filepath.Join(env.dir, "db")})
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, "Persisted", storage.NewStore(db).Achievements.Get()[0].Text)
}

func TestRunLeavesNoRuntimeBehind(t *testing.T) {
	env := setup(t)

	env.mustRun("agenda")
	assert.Nil(t, runtimeOf(rootCmd))
	assert.Nil(t, runtimeOf(agendaCmd))

	// A failed pre-run must not pick up the runtime of an earlier run.
	_, stderr, err := env.run("--format", "xml", "agenda")
	require.Error(t, err)
	assert.Contains(t, stderr, "Use cli, json or plain")
	assert.Nil(t, runtimeOf(agendaCmd))
}

// =============================================================================
// Agenda Tests
// =============================================================================

func TestAgendaAddKeepsOrder(t *testing.T) {
	env := setup(t)

	var added output.ActionResponse
	env.runJSON(&added, "agenda", "add", "Write", "report", "--at", "10:00", "--for", "1h30m")
	assert.Equal(t, "added", added.Status)
	assert.Equal(t, "agenda", added.Domain)
	assert.NotEmpty(t, added.ID)

	var resp output.AgendaResponse
	env.runJSON(&resp, "agenda")
	require.Len(t, resp.Items, 4)
	assert.Equal(t, "Daily Standup", resp.Items[0].Title)
	assert.Equal(t, "Write report", resp.Items[1].Title)
	assert.Equal(t, "10:00", resp.Items[1].StartTime)
	assert.Equal(t, 90, resp.Items[1].DurationMinutes)
	assert.Equal(t, model.CategoryTask, resp.Items[1].Category)
}

func TestAgendaAddNaturalTime(t *testing.T) {
	env := setup(t)

	out := env.mustRun("agenda", "add", "Gym", "--at", "6pm", "--for", "45", "--type", "break")
	assert.Contains(t, out, "✓ Added 18:00 Gym")
}

func TestAgendaAddValidation(t *testing.T) {
	env := setup(t)

	_, _, err := env.run("agenda", "add", "Gym", "--at", "whenever")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.ErrorIs(t, err, errors.ErrInvalidClock)

	_, _, err = env.run("agenda", "add", "Gym", "--at", "10:00", "--for", "0")
	assert.ErrorIs(t, err, errors.ErrInvalidDuration)

	_, _, err = env.run("agenda", "add", "Gym", "--at", "10:00", "--type", "party")
	assert.True(t, errors.IsUserError(err))

	_, _, err = env.run("agenda", "add", "  ", "--at", "10:00")
	assert.ErrorIs(t, err, errors.ErrRequiredField)

	_, _, err = env.run("agenda", "add", "Gym")
	assert.Error(t, err)
}

func TestAgendaDoneUndoReasonDelete(t *testing.T) {
	env := setup(t)

	out := env.mustRun("agenda", "done", "1")
	assert.Contains(t, out, "Completed Daily Standup")

	env.mustRun("agenda", "reason", "2", "meetings", "ran", "long")
	var resp output.AgendaResponse
	env.runJSON(&resp, "agenda", "list")
	assert.Equal(t, 1, resp.Completed)
	assert.Equal(t, "meetings ran long", resp.Items[1].UnachievedReason)

	env.mustRun("agenda", "undo", "1")
	out = env.mustRun("agenda", "reason", "2")
	assert.Contains(t, out, "Cleared reason")

	out = env.mustRun("agenda", "delete", "3")
	assert.Contains(t, out, "Deleted Lunch Break")

	resp = output.AgendaResponse{}
	env.runJSON(&resp, "agenda")
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 0, resp.Completed)
	assert.Empty(t, resp.Items[1].UnachievedReason)
}

func TestAgendaUnknownID(t *testing.T) {
	env := setup(t)

	_, stderr, err := env.run("agenda", "done", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
	assert.Contains(t, stderr, "zenith agenda")
}

func TestAgendaUnknownIDJSON(t *testing.T) {
	env := setup(t)

	stdout, _, err := env.run("--format", "json", "agenda", "delete", "nope")
	require.Error(t, err)

	var resp output.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Agenda item not found", resp.Message)
	assert.NotEmpty(t, resp.Suggestion)
}

// =============================================================================
// Highlights Tests
// =============================================================================

func TestHighlightsSetAndClear(t *testing.T) {
	env := setup(t)

	env.mustRun("highlights", "set", "2", "Fixed", "the", "build")
	var resp output.HighlightsResponse
	env.runJSON(&resp, "highlights")
	assert.Equal(t, 1, resp.Filled)
	assert.Equal(t, "Fixed the build", resp.Highlights[1].Text)

	out := env.mustRun("highlights", "clear", "2")
	assert.Contains(t, out, "Cleared highlight 2")
	env.runJSON(&resp, "highlights", "list")
	assert.Equal(t, 0, resp.Filled)
}

func TestHighlightsOutOfRange(t *testing.T) {
	env := setup(t)

	_, _, err := env.run("highlights", "set", "4", "Too many")
	assert.ErrorIs(t, err, errors.ErrSlotOutOfRange)

	_, _, err = env.run("highlights", "clear", "first")
	assert.ErrorIs(t, err, errors.ErrSlotOutOfRange)
}

// =============================================================================
// Journal Tests
// =============================================================================

func TestJournalWriteFlags(t *testing.T) {
	env := setup(t)

	env.mustRun("journal", "write", "--mood", "Happy", "--reason", "sunny day")
	env.mustRun("journal", "write", "--notes", "Long walk.")

	var resp output.JournalResponse
	env.runJSON(&resp, "journal")
	assert.Equal(t, model.MoodHappy, resp.Journal.Mood)
	assert.Equal(t, "sunny day", resp.Journal.MoodReason)
	assert.Equal(t, "Long walk.", resp.Journal.Notes)

	out := env.mustRun("journal", "show")
	assert.Contains(t, out, "Because: sunny day")
}

func TestJournalNotesFromStdin(t *testing.T) {
	env := setup(t)
	env.stdin = "Slept badly\r\nbut coffee helped\n"

	env.mustRun("journal", "write", "--mood", "sad", "--notes", "-")

	var resp output.JournalResponse
	env.runJSON(&resp, "journal")
	assert.Equal(t, model.MoodSad, resp.Journal.Mood)
	assert.Equal(t, "Slept badly\nbut coffee helped", resp.Journal.Notes)
}

func TestJournalWriteValidation(t *testing.T) {
	env := setup(t)

	_, _, err := env.run("journal", "write", "--mood", "meh")
	assert.True(t, errors.IsUserError(err))

	// No flags and no terminal.
	_, _, err = env.run("journal", "write")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nothing to write")
}

// =============================================================================
// Finance Tests
// =============================================================================

func TestFinanceAddListDelete(t *testing.T) {
	env := setup(t)

	var added output.ActionResponse
	env.runJSON(&added, "finance", "add", "expense", "transport", "$4.20", "Bus", "fare", "--date", "2024-03-01")
	require.NotEmpty(t, added.ID)

	var resp struct {
		Transactions []model.Transaction   `json:"transactions"`
		Summary      output.SummaryOutput `json:"summary"`
	}
	env.runJSON(&resp, "finance")
	require.Len(t, resp.Transactions, 3)
	tx := resp.Transactions[2]
	assert.Equal(t, model.FinanceTransport, tx.Category)
	assert.Equal(t, "Bus fare", tx.Description)
	assert.Equal(t, "2024-03-01", tx.Date)
	assert.Equal(t, "19.20", resp.Summary.Expenses)

	out := env.mustRun("finance", "delete", added.ID[:8])
	assert.Contains(t, out, "Deleted Bus fare")

	var summary output.SummaryOutput
	env.runJSON(&summary, "finance", "summary")
	assert.Equal(t, "250.00", summary.Income)
	assert.Equal(t, "15.00", summary.Expenses)
	assert.Equal(t, "235.00", summary.Balance)
}

func TestFinanceAddValidation(t *testing.T) {
	env := setup(t)

	_, _, err := env.run("finance", "add", "gift", "Food", "5", "Cake")
	assert.True(t, errors.IsUserError(err))

	_, _, err = env.run("finance", "add", "expense", "Toys", "5", "Lego")
	assert.True(t, errors.IsUserError(err))

	_, _, err = env.run("finance", "add", "--", "expense", "Food", "-5", "Cake")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, stderr, err := env.run("finance", "add", "expense", "Food", "-5", "Cake")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
	assert.Contains(t, stderr, "positive amount")

	_, _, err = env.run("finance", "add", "expense", "Food", "5", "Cake", "-x")
	require.Error(t, err)
	assert.False(t, errors.IsUserError(err))

	_, _, err = env.run("finance", "add", "expense", "Food", "five", "Cake")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, _, err = env.run("finance", "add", "expense", "Food", "5", "Cake", "--date", "notadate")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestFinanceListCLI(t *testing.T) {
	env := setup(t)

	out := env.mustRun("finance")
	assert.Contains(t, out, "Side project payment")
	assert.Contains(t, out, "Balance:  $235.00")
}

// =============================================================================
// Export Tests
// =============================================================================

func TestExportCSVToFile(t *testing.T) {
	env := setup(t)
	path := filepath.Join(env.dir, "tx.csv")

	out := env.mustRun("export", "-o", path)
	assert.Contains(t, out, "Exported")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, finance.CSVHeader, records[0])
	assert.Equal(t, "Lunch", records[1][4])
}

func TestExportJSON(t *testing.T) {
	env := setup(t)

	var resp struct {
		Currency     string              `json:"currency"`
		Transactions []model.Transaction `json:"transactions"`
		Count        int                 `json:"count"`
	}
	stdout := env.mustRun("export", "--format", "json")
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, 2, resp.Count)
}

func TestExportBackup(t *testing.T) {
	env := setup(t)
	env.mustRun("highlights", "set", "1", "Backed up")

	var backup storage.Backup
	stdout := env.mustRun("export", "--backup")
	require.NoError(t, json.Unmarshal([]byte(stdout), &backup))
	assert.Equal(t, storage.BackupVersion, backup.Version)
	assert.Len(t, backup.Agenda, 3)
	assert.Equal(t, "Backed up", backup.Achievements[0].Text)
	assert.Len(t, backup.Transactions, 2)
}

func TestExportInvalidFormat(t *testing.T) {
	env := setup(t)
	_, _, err := env.run("export", "--format", "xml")
	assert.True(t, errors.IsUserError(err))
}

// =============================================================================
// Insight Tests
// =============================================================================

func TestInsightWithoutKey(t *testing.T) {
	env := setup(t)

	out := env.mustRun("insight", "completion")
	assert.Contains(t, out, "Completion")
	assert.Contains(t, out, insight.MsgNotConfigured)
}

func TestInsightAllJSON(t *testing.T) {
	env := setup(t)

	var resp output.InsightsResponse
	env.runJSON(&resp, "insight", "all")
	require.Len(t, resp.Insights, 4)

	byDomain := make(map[model.Domain]string)
	for _, in := range resp.Insights {
		byDomain[in.Domain] = in.Text
	}
	// Short-circuits are checked before credentials.
	assert.Equal(t, insight.MsgNoAchievements, byDomain[model.DomainHighlights])
	assert.Equal(t, insight.MsgNoNotes, byDomain[model.DomainJournal])
	assert.Equal(t, insight.MsgNotConfigured, byDomain[model.DomainAgenda])
	assert.Equal(t, insight.MsgNotConfigured, byDomain[model.DomainFinance])
}

func TestInsightAfterDeletingAgenda(t *testing.T) {
	env := setup(t)
	env.mustRun("agenda", "delete", "1")
	env.mustRun("agenda", "delete", "2")
	env.mustRun("agenda", "delete", "3")

	var resp output.InsightsResponse
	env.runJSON(&resp, "insight", "completion")
	require.Len(t, resp.Insights, 1)
	assert.Equal(t, insight.MsgNoTasks, resp.Insights[0].Text)
}

func TestInsightUnknownKind(t *testing.T) {
	env := setup(t)
	_, _, err := env.run("insight", "weather")
	assert.True(t, errors.IsUserError(err))
}

func TestInsightDomains(t *testing.T) {
	domains, err := insightDomains(nil)
	require.NoError(t, err)
	assert.Equal(t, model.Domains, domains)

	domains, err = insightDomains([]string{"spending"})
	require.NoError(t, err)
	assert.Equal(t, []model.Domain{model.DomainFinance}, domains)

	domains, err = insightDomains([]string{"tasks"})
	require.NoError(t, err)
	assert.Equal(t, []model.Domain{model.DomainAgenda}, domains)
}

// =============================================================================
// Reset Tests
// =============================================================================

func TestResetDomain(t *testing.T) {
	env := setup(t)
	env.mustRun("agenda", "delete", "1")
	env.mustRun("highlights", "set", "1", "Keep me")

	out := env.mustRun("reset", "agenda")
	assert.Contains(t, out, "Agenda restored")

	var agenda output.AgendaResponse
	env.runJSON(&agenda, "agenda")
	assert.Equal(t, 3, agenda.Total)

	var hl output.HighlightsResponse
	env.runJSON(&hl, "highlights")
	assert.Equal(t, "Keep me", hl.Highlights[0].Text)

	_, _, err := env.run("reset", "everything")
	assert.True(t, errors.IsUserError(err))
}

// =============================================================================
// Completion Tests
// =============================================================================

func TestCompletionScripts(t *testing.T) {
	env := setup(t)
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out := env.mustRun("completion", shell)
		assert.NotEmpty(t, out, shell)
	}
}

func TestCompleteValues(t *testing.T) {
	got, directive := completeValues("csv", "json")(nil, nil, "j")
	assert.Equal(t, []string{"json"}, got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestCompleteIDsWithoutRuntime(t *testing.T) {
	got, directive := completeAgendaIDs(&cobra.Command{}, nil, "")
	assert.Nil(t, got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = completeTransactionIDs(nil, nil, "")
	assert.Nil(t, got)
}

func TestCompleteAgendaIDs(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.Storage.DBPath = ":memory:"
	rc, err := runtime.New(context.Background(), runtime.Options{Config: cfg})
	require.NoError(t, err)
	defer rc.Close()

	c := &cobra.Command{}
	c.SetContext(runtime.WithContext(context.Background(), rc))

	items := rc.Store.Agenda.Get()
	require.NotEmpty(t, items)
	got, _ := completeAgendaIDs(c, nil, "")
	require.Len(t, got, len(items))
	assert.True(t, strings.HasPrefix(got[0], output.ShortID(items[0].ID)+"\t"))

	got, _ = completeAgendaIDs(c, []string{"already"}, "")
	assert.Nil(t, got)
}

func TestCompleteDomains(t *testing.T) {
	got, _ := completeDomains(nil, nil, "f")
	assert.Equal(t, []string{"finance\tFinance"}, got)
}
