package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for transactions.
const DateLayout = "2006-01-02"

// Kind separates money coming in from money going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is income or expense.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// ParseKind parses a transaction kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("invalid transaction type %q (use income or expense)", s)
	}
	return k, nil
}

// FinanceCategory is the closed set of transaction categories.
type FinanceCategory string

const (
	FinanceTransport     FinanceCategory = "Transport"
	FinanceFood          FinanceCategory = "Food"
	FinanceSubscriptions FinanceCategory = "Subscriptions"
	FinanceSalary        FinanceCategory = "Salary"
	FinanceFreelance     FinanceCategory = "Freelance"
	FinanceOther         FinanceCategory = "Other"
)

// FinanceCategories lists the valid transaction categories.
var FinanceCategories = []FinanceCategory{
	FinanceTransport, FinanceFood, FinanceSubscriptions,
	FinanceSalary, FinanceFreelance, FinanceOther,
}

// Valid reports whether c is a known category.
func (c FinanceCategory) Valid() bool {
	for _, known := range FinanceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseFinanceCategory parses a category name case-insensitively.
func ParseFinanceCategory(s string) (FinanceCategory, error) {
	name := strings.TrimSpace(s)
	for _, c := range FinanceCategories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid finance category %q", s)
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID          string          `json:"id"`
	Kind        Kind            `json:"type"`
	Category    FinanceCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description"`
}

// NewTransaction creates a transaction with a fresh id. An empty date means today.
func NewTransaction(kind Kind, category FinanceCategory, amount decimal.Decimal, date, description string) Transaction {
	if date == "" {
		date = Today()
	}
	return Transaction{
		ID:          NewID(),
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
	}
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
