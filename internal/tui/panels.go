package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/insight"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
	"github.com/manav03panchal/zenith/internal/parser"
)

func panelWidth(width int) int {
	if width < 24 {
		return 20
	}
	return width - 4
}

// AgendaComponent displays the agenda with a selection cursor.
type AgendaComponent struct {
	Items  []model.AgendaItem
	Cursor int
	Width  int
}

// View renders the agenda component.
func (ac *AgendaComponent) View() string {
	var content strings.Builder

	if len(ac.Items) == 0 {
		content.WriteString(StyleSubtitle.Render("No agenda items"))
		return StylePanelBox.Width(panelWidth(ac.Width)).Render(content.String())
	}

	for i, it := range ac.Items {
		if i > 0 {
			content.WriteString("\n")
		}
		cursor := "  "
		if i == ac.Cursor {
			cursor = StyleCursor.Render("> ")
		}
		box := "[ ]"
		title := it.Title
		if it.Completed {
			box = StyleSuccess.Render("[x]")
			title = StyleDone.Render(title)
		}
		content.WriteString(fmt.Sprintf("%s%s %s  %s  %s",
			cursor, box, StyleTime.Render(it.StartTime), title,
			StyleSubtitle.Render(fmt.Sprintf("%s · %s", it.Category, parser.FormatMinutes(it.DurationMinutes)))))
		if it.HasReason() {
			content.WriteString("\n")
			content.WriteString(StyleNote.Render("        ↳ " + it.UnachievedReason))
		}
	}

	done := model.CompletedCount(ac.Items)
	pct := float64(done) / float64(len(ac.Items)) * 100
	content.WriteString("\n\n")
	content.WriteString(ProgressBar(pct, 20))
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf(" %d/%d completed", done, len(ac.Items))))

	return StylePanelBox.Width(panelWidth(ac.Width)).Render(content.String())
}

// HighlightsComponent displays the three highlight slots.
type HighlightsComponent struct {
	Achievements []model.Achievement
	Width        int
}

// View renders the highlights component.
func (hc *HighlightsComponent) View() string {
	lines := make([]string, len(hc.Achievements))
	for i, a := range hc.Achievements {
		text := a.Text
		if !a.Filled() {
			text = StyleSubtitle.Render("(empty)")
		}
		lines[i] = fmt.Sprintf("%d. %s", i+1, text)
	}
	return StylePanelBox.Width(panelWidth(hc.Width)).Render(strings.Join(lines, "\n"))
}

// JournalComponent displays the journal entry.
type JournalComponent struct {
	Entry model.JournalEntry
	Width int
}

// View renders the journal component.
func (jc *JournalComponent) View() string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s %s", jc.Entry.Mood.Emoji(), StyleTitle.Render(jc.Entry.Mood.String())))
	if jc.Entry.MoodReason != "" {
		content.WriteString("\n")
		content.WriteString(StyleNote.Render("because " + jc.Entry.MoodReason))
	}
	content.WriteString("\n\n")
	if jc.Entry.HasNotes() {
		content.WriteString(jc.Entry.Notes)
	} else {
		content.WriteString(StyleSubtitle.Render("No notes yet"))
	}

	return StylePanelBox.Width(panelWidth(jc.Width)).Render(content.String())
}

// FinanceComponent displays transactions and totals.
type FinanceComponent struct {
	Transactions []model.Transaction
	Currency     string
	Width        int
}

// View renders the finance component.
func (fc *FinanceComponent) View() string {
	var content strings.Builder

	if len(fc.Transactions) == 0 {
		content.WriteString(StyleSubtitle.Render("No transactions"))
	}
	for i, tx := range fc.Transactions {
		if i > 0 {
			content.WriteString("\n")
		}
		amount := finance.Format(tx.Amount, fc.Currency)
		if tx.Kind == model.KindExpense {
			amount = StyleExpense.Render("-" + amount)
		} else {
			amount = StyleIncome.Render("+" + amount)
		}
		content.WriteString(fmt.Sprintf("%s  %-14s %s  %s",
			StyleSubtitle.Render(tx.Date), tx.Category, tx.Description, amount))
	}

	s := finance.Totals(fc.Transactions)
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Income %s  Expenses %s  Balance %s",
		StyleIncome.Render(finance.Format(s.Income, fc.Currency)),
		StyleExpense.Render(finance.Format(s.Expenses, fc.Currency)),
		finance.Format(s.Balance, fc.Currency)))

	return StylePanelBox.Width(panelWidth(fc.Width)).Render(content.String())
}

// InsightComponent displays the insight state of one tab.
type InsightComponent struct {
	Snapshot insight.Snapshot
	Spinner  spinner.Model
	Width    int
}

// View renders the insight component.
func (ic *InsightComponent) View() string {
	var body string
	switch ic.Snapshot.State {
	case insight.StateIdle:
		body = StyleSubtitle.Render("Press 'i' for an insight")
	case insight.StatePending:
		body = ic.Spinner.View() + " Thinking..."
		if ic.Snapshot.Text != "" {
			body += "\n\n" + StyleSubtitle.Render(ic.Snapshot.Text)
		}
	case insight.StateResolved:
		body = output.RenderMarkdown(ic.Snapshot.Text, panelWidth(ic.Width)-4, true)
	}
	return StyleInsightBox.Width(panelWidth(ic.Width)).Render("✨ " + body)
}
