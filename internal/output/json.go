package output

import (
	"github.com/manav03panchal/zenith/internal/finance"
	"github.com/manav03panchal/zenith/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// AgendaResponse represents the agenda in JSON.
type AgendaResponse struct {
	Items     []model.AgendaItem `json:"items"`
	Completed int                `json:"completed"`
	Total     int                `json:"total"`
}

// HighlightsResponse represents the highlight slots in JSON.
type HighlightsResponse struct {
	Highlights []model.Achievement `json:"highlights"`
	Filled     int                 `json:"filled"`
}

// JournalResponse represents the journal entry in JSON.
type JournalResponse struct {
	Journal model.JournalEntry `json:"journal"`
}

// SummaryOutput represents finance totals in JSON. Amounts are decimal strings.
type SummaryOutput struct {
	Currency   string            `json:"currency"`
	Income     string            `json:"income"`
	Expenses   string            `json:"expenses"`
	Balance    string            `json:"balance"`
	ByCategory map[string]string `json:"by_category,omitempty"`
}

// NewSummaryOutput creates a SummaryOutput from totals.
func NewSummaryOutput(s finance.Summary, byCategory []finance.CategoryTotal, currency string) *SummaryOutput {
	out := &SummaryOutput{
		Currency: currency,
		Income:   s.Income.StringFixed(2),
		Expenses: s.Expenses.StringFixed(2),
		Balance:  s.Balance.StringFixed(2),
	}
	if len(byCategory) > 0 {
		out.ByCategory = make(map[string]string, len(byCategory))
		for _, ct := range byCategory {
			out.ByCategory[string(ct.Category)] = ct.Amount.StringFixed(2)
		}
	}
	return out
}

// TransactionsResponse represents the transaction list in JSON.
type TransactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Summary      *SummaryOutput      `json:"summary"`
}

// InsightOutput represents one insight in JSON.
type InsightOutput struct {
	Domain model.Domain `json:"domain"`
	Text   string       `json:"text"`
}

// InsightsResponse represents one or more insights in JSON.
type InsightsResponse struct {
	Insights []InsightOutput `json:"insights"`
}

// ActionResponse reports the result of a mutating command.
type ActionResponse struct {
	Status string `json:"status"`
	Domain string `json:"domain,omitempty"`
	ID     string `json:"id,omitempty"`
	Item   any    `json:"item,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// OverviewResponse represents the whole day in JSON.
type OverviewResponse struct {
	Date       string             `json:"date"`
	Agenda     AgendaResponse     `json:"agenda"`
	Highlights HighlightsResponse `json:"highlights"`
	Journal    model.JournalEntry `json:"journal"`
	Summary    *SummaryOutput     `json:"finance"`
}

// PrintAgenda outputs the agenda in JSON format.
func (j *JSONFormatter) PrintAgenda(items []model.AgendaItem) error {
	return j.JSON(newAgendaResponse(items))
}

func newAgendaResponse(items []model.AgendaItem) AgendaResponse {
	if items == nil {
		items = []model.AgendaItem{}
	}
	return AgendaResponse{Items: items, Completed: model.CompletedCount(items), Total: len(items)}
}

// PrintHighlights outputs the highlight slots in JSON format.
func (j *JSONFormatter) PrintHighlights(achievements []model.Achievement) error {
	return j.JSON(newHighlightsResponse(achievements))
}

func newHighlightsResponse(achievements []model.Achievement) HighlightsResponse {
	if achievements == nil {
		achievements = []model.Achievement{}
	}
	return HighlightsResponse{Highlights: achievements, Filled: len(model.FilledAchievements(achievements))}
}

// PrintJournal outputs the journal entry in JSON format.
func (j *JSONFormatter) PrintJournal(entry model.JournalEntry) error {
	return j.JSON(JournalResponse{Journal: entry})
}

// PrintTransactions outputs transactions and their totals in JSON format.
func (j *JSONFormatter) PrintTransactions(txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}
	return j.JSON(TransactionsResponse{
		Transactions: txs,
		Summary:      NewSummaryOutput(finance.Totals(txs), finance.ByCategory(txs), j.Currency),
	})
}

// PrintSummary outputs finance totals in JSON format.
func (j *JSONFormatter) PrintSummary(txs []model.Transaction) error {
	return j.JSON(NewSummaryOutput(finance.Totals(txs), finance.ByCategory(txs), j.Currency))
}

// PrintInsights outputs insights in JSON format.
func (j *JSONFormatter) PrintInsights(insights []InsightOutput) error {
	return j.JSON(InsightsResponse{Insights: insights})
}

// PrintAction outputs the result of a mutation in JSON format.
func (j *JSONFormatter) PrintAction(status string, domain model.Domain, id string, item any) error {
	return j.JSON(ActionResponse{Status: status, Domain: string(domain), ID: id, Item: item})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}

// PrintOverview outputs every domain in JSON format.
func (j *JSONFormatter) PrintOverview(agenda []model.AgendaItem, achievements []model.Achievement, journal model.JournalEntry, txs []model.Transaction) error {
	return j.JSON(OverviewResponse{
		Date:       model.Today(),
		Agenda:     newAgendaResponse(agenda),
		Highlights: newHighlightsResponse(achievements),
		Journal:    journal,
		Summary:    NewSummaryOutput(finance.Totals(txs), finance.ByCategory(txs), j.Currency),
	})
}
