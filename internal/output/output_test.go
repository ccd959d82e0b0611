package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/model"
)

func plainCLI(buf *bytes.Buffer) *CLIFormatter {
	return NewCLIFormatter(&Formatter{Writer: buf, Format: FormatCLI, ColorMode: ColorNever, Currency: "USD"})
}

func jsonOut(buf *bytes.Buffer) *JSONFormatter {
	return NewJSONFormatter(&Formatter{Writer: buf, Format: FormatJSON, ColorMode: ColorNever, Currency: "USD"})
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter(nil, "")
	assert.NotNil(t, f.Writer)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.Equal(t, "USD", f.Currency)

	var buf bytes.Buffer
	f = NewFormatter(&buf, "EUR")
	assert.Equal(t, &buf, f.Writer)
	assert.Equal(t, "EUR", f.Currency)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cli", "json", "plain"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("yaml")
	assert.EqualError(t, err, `invalid format "yaml" (use cli, json or plain)`)
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode("always")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, m)
	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_overrides_always", func(t *testing.T) {
		f := &Formatter{Format: FormatPlain, ColorMode: ColorAlways}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterWidthDefault(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	assert.Equal(t, DefaultWidth, f.Width())
}

func TestFormatterMoney(t *testing.T) {
	f := &Formatter{Currency: "USD"}
	assert.Equal(t, "$12.50", f.Money(decimal.RequireFromString("12.5")))
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	require.NoError(t, f.JSON(map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

// =============================================================================
// CLI Tests
// =============================================================================

func TestShortID(t *testing.T) {
	assert.Equal(t, "1", ShortID("1"))
	assert.Equal(t, "0190a1b2", ShortID("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"))
}

func TestPrintAgenda(t *testing.T) {
	var buf bytes.Buffer
	items := model.SeedAgenda()
	items[0].Completed = true
	items[1].UnachievedReason = "ran out of time"

	plainCLI(&buf).PrintAgenda(items)
	out := buf.String()
	assert.Contains(t, out, "[x] 09:00  Daily Standup")
	assert.Contains(t, out, "[ ] 11:00  Code Review Session")
	assert.Contains(t, out, "(meeting, 15m)")
	assert.Contains(t, out, "↳ ran out of time")
	assert.Contains(t, out, "1/3 completed")
}

func TestPrintAgendaEmpty(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintAgenda(nil)
	assert.Contains(t, buf.String(), "No agenda items")
}

func TestPrintHighlights(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintHighlights([]model.Achievement{{ID: "1", Text: "Shipped"}, {ID: "2"}, {ID: "3"}})
	out := buf.String()
	assert.Contains(t, out, "1. Shipped")
	assert.Contains(t, out, "2. (empty)")
}

func TestPrintJournal(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintJournal(model.JournalEntry{Mood: model.MoodHappy, MoodReason: "sunny", Notes: "Long walk."})
	out := buf.String()
	assert.Contains(t, out, "happy")
	assert.Contains(t, out, "Because: sunny")
	assert.Contains(t, out, "Long walk.")
}

func TestPrintTransactions(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintTransactions(model.SeedTransactions())
	out := buf.String()
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "-$15.00")
	assert.Contains(t, out, "+$250.00")
	assert.Contains(t, out, "Side project payment")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	txs := model.SeedTransactions()
	plainCLI(&buf).PrintSummary(finance.Totals(txs), finance.ByCategory(txs))
	out := buf.String()
	assert.Contains(t, out, "Income:   $250.00")
	assert.Contains(t, out, "Expenses: $15.00")
	assert.Contains(t, out, "Balance:  $235.00")
	assert.Contains(t, out, "Food")
}

func TestPrintInsightPlain(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintInsight("Completion", "  **Rest** more.  ")
	assert.Equal(t, "✨ Completion\n**Rest** more.\n", buf.String())
}

func TestPrintOverview(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintOverview(model.SeedAgenda(), model.SeedAchievements(), model.SeedJournal(), model.SeedTransactions())
	out := buf.String()
	assert.Contains(t, out, "0/3 completed")
	assert.Contains(t, out, "next: 09:00 Daily Standup")
	assert.Contains(t, out, "0/3 logged")
	assert.Contains(t, out, "neutral")
	assert.Contains(t, out, "$250.00 in, $15.00 out")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "██████████", ProgressBar(150, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(-5, 10))
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	plainCLI(&buf).PrintTable([]string{"A"}, nil)
	assert.Empty(t, buf.String())
}

func TestRenderMarkdownPlain(t *testing.T) {
	assert.Equal(t, "# hi", RenderMarkdown("  # hi \n", 80, false))
	assert.Equal(t, "", RenderMarkdown("   ", 80, true))
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestJSONPrintAgenda(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintAgenda(model.SeedAgenda()))

	var resp AgendaResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 0, resp.Completed)
	assert.Equal(t, "Daily Standup", resp.Items[0].Title)
}

func TestJSONPrintAgendaEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintAgenda(nil))
	assert.Contains(t, buf.String(), `"items": []`)
}

func TestJSONPrintTransactions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintTransactions(model.SeedTransactions()))

	var resp struct {
		Transactions []json.RawMessage `json:"transactions"`
		Summary      SummaryOutput     `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, "250.00", resp.Summary.Income)
	assert.Equal(t, "15.00", resp.Summary.Expenses)
	assert.Equal(t, "235.00", resp.Summary.Balance)
	assert.Equal(t, "15.00", resp.Summary.ByCategory["Food"])
}

func TestJSONPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintInsights([]InsightOutput{{Domain: model.DomainJournal, Text: "hello"}}))
	assert.JSONEq(t, `{"insights":[{"domain":"journal","text":"hello"}]}`, buf.String())
}

func TestJSONPrintError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintError("error", "not found", "agenda item not found", "try again"))
	assert.JSONEq(t, `{"status":"error","error":"not found","message":"agenda item not found","suggestion":"try again"}`, buf.String())
}

func TestJSONPrintAction(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintAction("deleted", model.DomainFinance, "abc", nil))
	assert.JSONEq(t, `{"status":"deleted","domain":"finance","id":"abc"}`, buf.String())
}

func TestJSONPrintOverview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOut(&buf).PrintOverview(model.SeedAgenda(), model.SeedAchievements(), model.SeedJournal(), model.SeedTransactions()))

	var resp OverviewResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, model.Today(), resp.Date)
	assert.Equal(t, 3, resp.Agenda.Total)
	assert.Equal(t, 0, resp.Highlights.Filled)
	assert.Equal(t, model.MoodNeutral, resp.Journal.Mood)
	assert.Equal(t, "USD", resp.Summary.Currency)
}
