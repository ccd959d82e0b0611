package insight

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/model"
)

// CompletionPrompt asks for one suggestion based on how much of the agenda
// was completed and why the rest was not.
func CompletionPrompt(items []model.AgendaItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze my daily task completion. I completed %d out of %d tasks.\n",
		model.CompletedCount(items), len(items))
	b.WriteString("Here are the tasks I didn't complete and my reasons:\n")
	for _, it := range items {
		if it.HasReason() {
			fmt.Fprintf(&b, "- %s: %s\n", it.Title, it.UnachievedReason)
		}
	}
	b.WriteString("\nBased on this, provide one concise, actionable suggestion for improvement ")
	b.WriteString(`(e.g., "You often miss tasks after 6pm, so consider lighter evenings.").`)
	return b.String()
}

// MomentumPrompt asks for an encouraging note about the filled highlights.
func MomentumPrompt(achievements []model.Achievement) string {
	filled := model.FilledAchievements(achievements)

	var b strings.Builder
	b.WriteString("Analyze my daily achievements. Today's highlights are:\n")
	for _, a := range filled {
		fmt.Fprintf(&b, "- %s\n", a.Text)
	}
	fmt.Fprintf(&b, "\nProvide a short, encouraging insight about my momentum, like "+
		`"You accomplished %d goals today. Your momentum is building!".`, len(filled))
	return b.String()
}

// JournalPrompt asks for a reflection on the journal entry. Mood reason and
// notes are embedded verbatim.
func JournalPrompt(entry model.JournalEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze my journal entry. Today I felt %s because \"%s\".\n", entry.Mood, entry.MoodReason)
	fmt.Fprintf(&b, "My notes are: \"%s\"\n", entry.Notes)
	b.WriteString("\nProvide a concise, thoughtful reflection summary. If you see a recurring theme like stress, ")
	b.WriteString("gently point it out and offer a helpful suggestion, like ")
	b.WriteString(`"Your entries this week show recurring stress around deadlines. Would you like to schedule focus sessions?".`)
	return b.String()
}

// SpendingPrompt asks for a spending insight from income and expense totals
// and the individual expenses. Amounts are shown in currency.
func SpendingPrompt(txs []model.Transaction, currency string) string {
	totals := finance.Totals(txs)

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze my daily finances. Total income: %s. Total expenses: %s.\n",
		finance.Format(totals.Income, currency), finance.Format(totals.Expenses, currency))
	b.WriteString("Here is a list of my expenses today:\n")
	for _, tx := range finance.Expenses(txs) {
		fmt.Fprintf(&b, "- %s: %s for %s\n", tx.Category, finance.Format(tx.Amount, currency), tx.Description)
	}
	b.WriteString("\nProvide a brief, helpful spending insight, like ")
	b.WriteString(`"You've spent 32% less than last week on food." or `)
	b.WriteString(`"Your subscription costs are a significant part of your daily spending."`)
	return b.String()
}
