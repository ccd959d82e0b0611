// Package finance computes totals over transactions and exports them.
package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/manav03panchal/zenith/internal/model"
)

// Summary holds income and expense totals.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Totals sums income and expenses. Balance is income minus expenses.
func Totals(txs []model.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Kind {
		case model.KindIncome:
			s.Income = s.Income.Add(tx.Amount)
		case model.KindExpense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// Expenses returns the expense transactions in store order.
func Expenses(txs []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Kind == model.KindExpense {
			out = append(out, tx)
		}
	}
	return out
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category model.FinanceCategory
	Amount   decimal.Decimal
}

// ByCategory returns expense totals per category, largest first.
func ByCategory(txs []model.Transaction) []CategoryTotal {
	sums := make(map[model.FinanceCategory]decimal.Decimal)
	for _, tx := range Expenses(txs) {
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for c, amt := range sums {
		out = append(out, CategoryTotal{Category: c, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
