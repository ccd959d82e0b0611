package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
)

func validItem() model.AgendaItem {
	return model.AgendaItem{ID: "1", Title: "Standup", Category: model.CategoryMeeting, StartTime: "09:00", DurationMinutes: 15}
}

func validTx() model.Transaction {
	return model.Transaction{ID: "1", Kind: model.KindExpense, Category: model.FinanceFood,
		Amount: decimal.NewFromInt(15), Date: "2024-01-01", Description: "Lunch"}
}

func TestAgendaItem(t *testing.T) {
	require.NoError(t, AgendaItem(validItem()))

	tests := []struct {
		name   string
		mutate func(*model.AgendaItem)
		cause  error
	}{
		{"empty_title", func(i *model.AgendaItem) { i.Title = "  " }, errors.ErrRequiredField},
		{"long_title", func(i *model.AgendaItem) { i.Title = strings.Repeat("x", MaxTitleLength+1) }, errors.ErrRequiredField},
		{"bad_time", func(i *model.AgendaItem) { i.StartTime = "9am" }, errors.ErrInvalidClock},
		{"zero_duration", func(i *model.AgendaItem) { i.DurationMinutes = 0 }, errors.ErrInvalidDuration},
		{"bad_category", func(i *model.AgendaItem) { i.Category = "party" }, errors.ErrRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)
			err := AgendaItem(item)
			require.Error(t, err)
			assert.True(t, errors.IsUserError(err))
			assert.ErrorIs(t, err, tt.cause)
			assert.NotEmpty(t, errors.GetSuggestion(err))
		})
	}
}

func TestTransaction(t *testing.T) {
	require.NoError(t, Transaction(validTx()))

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
		cause  error
	}{
		{"empty_description", func(tx *model.Transaction) { tx.Description = "" }, errors.ErrRequiredField},
		{"zero_amount", func(tx *model.Transaction) { tx.Amount = decimal.Zero }, errors.ErrInvalidAmount},
		{"negative_amount", func(tx *model.Transaction) { tx.Amount = decimal.NewFromInt(-5) }, errors.ErrInvalidAmount},
		{"bad_kind", func(tx *model.Transaction) { tx.Kind = "gift" }, errors.ErrRequiredField},
		{"bad_category", func(tx *model.Transaction) { tx.Category = "Toys" }, errors.ErrRequiredField},
		{"bad_date", func(tx *model.Transaction) { tx.Date = "01/02/2024" }, errors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTx()
			tt.mutate(&tx)
			err := Transaction(tx)
			require.Error(t, err)
			assert.True(t, errors.IsUserError(err))
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestHighlight(t *testing.T) {
	assert.NoError(t, Highlight(""))
	assert.NoError(t, Highlight("Shipped the release"))
	assert.Error(t, Highlight(strings.Repeat("a", MaxHighlightLength+1)))
}

func TestNotes(t *testing.T) {
	assert.NoError(t, Notes("short"))
	assert.Error(t, Notes(strings.Repeat("a", MaxNotesLength+1)))
}

func TestSanitizeLine(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeLine("  hello\t world \n"))
	assert.Equal(t, "abc", SanitizeLine("a\x00b\x07c"))
}

func TestSanitizeNotes(t *testing.T) {
	assert.Equal(t, "line1\nline2\nline3", SanitizeNotes(" line1\r\nline2\rline3\x00 "))
}
