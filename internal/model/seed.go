package model

import "github.com/shopspring/decimal"

// SeedAgenda returns the agenda written on first run.
func SeedAgenda() []AgendaItem {
	return []AgendaItem{
		{ID: "1", Title: "Daily Standup", Category: CategoryMeeting, StartTime: "09:00", DurationMinutes: 15},
		{ID: "2", Title: "Code Review Session", Category: CategoryTask, StartTime: "11:00", DurationMinutes: 60},
		{ID: "3", Title: "Lunch Break", Category: CategoryBreak, StartTime: "12:30", DurationMinutes: 45},
	}
}

// SeedAchievements returns the three empty highlight slots.
func SeedAchievements() []Achievement {
	return []Achievement{
		{ID: "1"},
		{ID: "2"},
		{ID: "3"},
	}
}

// SeedJournal returns the blank journal entry.
func SeedJournal() JournalEntry {
	return JournalEntry{Mood: MoodNeutral}
}

// SeedTransactions returns the sample transactions dated today.
func SeedTransactions() []Transaction {
	today := Today()
	return []Transaction{
		{ID: "1", Kind: KindExpense, Category: FinanceFood, Amount: decimal.NewFromInt(15), Date: today, Description: "Lunch"},
		{ID: "2", Kind: KindIncome, Category: FinanceFreelance, Amount: decimal.NewFromInt(250), Date: today, Description: "Side project payment"},
	}
}
