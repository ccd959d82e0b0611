package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/parser"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorInfo      = lipgloss.Color("#3B82F6") // Blue

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)

	styleIncome = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleExpense = lipgloss.NewStyle().
			Foreground(colorError)

	styleInsight = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInfo).
			Padding(0, 1)
)

var decimalHundred = decimal.NewFromInt(100)

// ShortIDLength is how many id characters are shown in listings.
const ShortIDLength = 8

// ShortID truncates long ids for display.
func ShortID(id string) string {
	if len(id) > ShortIDLength {
		return id[:ShortIDLength]
	}
	return id
}

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// PrintAgenda prints the agenda in start-time order with a completion bar.
func (c *CLIFormatter) PrintAgenda(items []model.AgendaItem) {
	c.Title("Agenda")
	if len(items) == 0 {
		c.Muted("No agenda items. Add one with 'zenith agenda add'.")
		return
	}

	for _, it := range items {
		box := "[ ]"
		title := it.Title
		if it.Completed {
			box = c.render(styleSuccess, "[x]")
			title = c.render(styleDone, title)
		}
		c.Printf("%s %s  %s  %s %s\n",
			box,
			c.render(styleBold, it.StartTime),
			title,
			c.render(styleMuted, fmt.Sprintf("(%s, %s)", it.Category, parser.FormatMinutes(it.DurationMinutes))),
			c.render(styleMuted, ShortID(it.ID)))
		if it.HasReason() {
			c.Printf("      %s\n", c.render(styleWarning, "↳ "+it.UnachievedReason))
		}
	}

	done := model.CompletedCount(items)
	pct := float64(done) / float64(len(items)) * 100
	c.Printf("\n%s %d/%d completed\n", ProgressBar(pct, 20), done, len(items))
}

// PrintHighlights prints the three highlight slots.
func (c *CLIFormatter) PrintHighlights(achievements []model.Achievement) {
	c.Title("Highlights")
	for i, a := range achievements {
		text := a.Text
		if !a.Filled() {
			text = c.render(styleMuted, "(empty)")
		}
		c.Printf("%d. %s\n", i+1, text)
	}
}

// PrintJournal prints the journal entry.
func (c *CLIFormatter) PrintJournal(entry model.JournalEntry) {
	c.Title("Journal")
	c.Printf("Mood: %s %s\n", entry.Mood.Emoji(), c.render(styleBold, entry.Mood.String()))
	if entry.MoodReason != "" {
		c.Printf("Because: %s\n", entry.MoodReason)
	}
	if entry.HasNotes() {
		c.Println()
		c.Println(entry.Notes)
	} else {
		c.Muted("No notes yet. Write some with 'zenith journal write'.")
	}
}

// PrintTransactions prints transactions as a table in store order.
func (c *CLIFormatter) PrintTransactions(txs []model.Transaction) {
	c.Title("Transactions")
	if len(txs) == 0 {
		c.Muted("No transactions. Add one with 'zenith finance add'.")
		return
	}

	rows := make([]TableRow, len(txs))
	for i, tx := range txs {
		amount := c.Money(tx.Amount)
		if tx.Kind == model.KindExpense {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		rows[i] = TableRow{Columns: []string{
			ShortID(tx.ID), tx.Date, string(tx.Kind), string(tx.Category), tx.Description, amount,
		}}
	}
	c.PrintTable([]string{"ID", "DATE", "TYPE", "CATEGORY", "DESCRIPTION", "AMOUNT"}, rows)
}

// PrintSummary prints income, expenses, balance and the expense breakdown.
func (c *CLIFormatter) PrintSummary(s finance.Summary, byCategory []finance.CategoryTotal) {
	c.Title("Summary")
	c.Printf("Income:   %s\n", c.render(styleIncome, c.Money(s.Income)))
	c.Printf("Expenses: %s\n", c.render(styleExpense, c.Money(s.Expenses)))
	balance := c.Money(s.Balance)
	if s.Balance.IsNegative() {
		balance = c.render(styleExpense, balance)
	} else {
		balance = c.render(styleIncome, balance)
	}
	c.Printf("Balance:  %s\n", balance)

	if len(byCategory) == 0 || s.Expenses.IsZero() {
		return
	}
	c.Println()
	for _, ct := range byCategory {
		pct := ct.Amount.Div(s.Expenses).Mul(decimalHundred).InexactFloat64()
		c.Printf("%-14s %s %s\n", ct.Category, ProgressBar(pct, 20), c.Money(ct.Amount))
	}
}

// PrintInsight prints a titled insight, rendering markdown when color is on.
func (c *CLIFormatter) PrintInsight(title, text string) {
	body := RenderMarkdown(text, c.Width(), c.IsColorEnabled())
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render("✨ " + title))
		c.Println(styleInsight.Render(body))
		return
	}
	c.Println("✨ " + title)
	c.Println(body)
}

// PrintOverview prints a one-screen summary of every domain.
func (c *CLIFormatter) PrintOverview(agenda []model.AgendaItem, achievements []model.Achievement, journal model.JournalEntry, txs []model.Transaction) {
	c.Title("Zenith · " + model.Today())
	c.Println()

	done := model.CompletedCount(agenda)
	c.Printf("%-11s %d/%d completed\n", "Agenda", done, len(agenda))
	for _, it := range agenda {
		if !it.Completed {
			c.Printf("%-11s next: %s %s\n", "", it.StartTime, it.Title)
			break
		}
	}

	c.Printf("%-11s %d/%d logged\n", "Highlights", len(model.FilledAchievements(achievements)), len(achievements))
	c.Printf("%-11s %s %s\n", "Journal", journal.Mood.Emoji(), journal.Mood)

	s := finance.Totals(txs)
	c.Printf("%-11s %s in, %s out\n", "Finance", c.Money(s.Income), c.Money(s.Expenses))
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]) + "  ")
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
