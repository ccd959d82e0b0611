// Package validate provides required-field and format checks for Zenith input.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/parser"
)

const (
	// MaxTitleLength is the maximum length for an agenda title.
	MaxTitleLength = 200
	// MaxHighlightLength is the maximum length for a highlight.
	MaxHighlightLength = 280
	// MaxDescriptionLength is the maximum length for a transaction description.
	MaxDescriptionLength = 200
	// MaxNotesLength is the maximum length for journal notes.
	MaxNotesLength = 10000
)

// Title validates an agenda item title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewFieldError(errors.ErrRequiredField, "title", "",
			"Title cannot be empty", "Provide a short title for the agenda item")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewFieldError(errors.ErrRequiredField, "title", title,
			"Title too long", "Titles must be 200 characters or fewer")
	}
	return nil
}

// Clock validates a canonical HH:MM start time.
func Clock(s string) error {
	if !parser.IsClock(s) {
		return errors.NewFieldError(errors.ErrInvalidClock, "time", s,
			"Invalid start time", "Use 24-hour HH:MM like '09:30'")
	}
	return nil
}

// Duration validates an agenda duration in minutes.
func Duration(minutes int) error {
	if minutes <= 0 {
		return errors.NewFieldError(errors.ErrInvalidDuration, "duration", "",
			"Duration must be greater than zero", "Give the duration in minutes, e.g. '45'")
	}
	return nil
}

// Category validates an agenda category.
func Category(c model.Category) error {
	if !c.Valid() {
		return errors.NewFieldError(errors.ErrRequiredField, "type", string(c),
			"Invalid agenda type", "Use task, meeting or break")
	}
	return nil
}

// AgendaItem runs every agenda field check.
func AgendaItem(item model.AgendaItem) error {
	if err := Title(item.Title); err != nil {
		return err
	}
	if err := Clock(item.StartTime); err != nil {
		return err
	}
	if err := Duration(item.DurationMinutes); err != nil {
		return err
	}
	return Category(item.Category)
}

// Highlight validates a highlight's text. Empty text clears the slot.
func Highlight(text string) error {
	if utf8.RuneCountInString(text) > MaxHighlightLength {
		return errors.NewUserError("Highlight too long", "Highlights must be 280 characters or fewer")
	}
	return nil
}

// Notes validates journal notes.
func Notes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return errors.NewUserError("Notes too long", "Journal notes must be 10000 characters or fewer")
	}
	return nil
}

// Description validates a transaction description.
func Description(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return errors.NewFieldError(errors.ErrRequiredField, "description", "",
			"Description cannot be empty", "Describe what the money was for")
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return errors.NewFieldError(errors.ErrRequiredField, "description", desc,
			"Description too long", "Descriptions must be 200 characters or fewer")
	}
	return nil
}

// Amount validates a transaction amount.
func Amount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.NewFieldError(errors.ErrInvalidAmount, "amount", amount.String(),
			"Amount must be greater than zero", "")
	}
	return nil
}

// Date validates a canonical YYYY-MM-DD date.
func Date(s string) error {
	if !parser.IsDate(s) {
		return errors.NewFieldError(errors.ErrInvalidDate, "date", s,
			"Invalid date", "Use YYYY-MM-DD like '2024-01-31'")
	}
	return nil
}

// Transaction runs every transaction field check.
func Transaction(tx model.Transaction) error {
	if err := Description(tx.Description); err != nil {
		return err
	}
	if err := Amount(tx.Amount); err != nil {
		return err
	}
	if !tx.Kind.Valid() {
		return errors.NewFieldError(errors.ErrRequiredField, "type", string(tx.Kind),
			"Invalid transaction type", "Use income or expense")
	}
	if !tx.Category.Valid() {
		return errors.NewFieldError(errors.ErrRequiredField, "category", string(tx.Category),
			"Invalid category", "Use Transport, Food, Subscriptions, Salary, Freelance or Other")
	}
	return Date(tx.Date)
}
