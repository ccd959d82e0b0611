package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Category is the kind of agenda entry.
type Category string

const (
	CategoryTask    Category = "task"
	CategoryMeeting Category = "meeting"
	CategoryBreak   Category = "break"
)

// Categories lists the valid agenda categories.
var Categories = []Category{CategoryTask, CategoryMeeting, CategoryBreak}

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTask, CategoryMeeting, CategoryBreak:
		return true
	}
	return false
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q (use task, meeting or break)", s)
	}
	return c, nil
}

// AgendaItem is a single scheduled entry of the day.
type AgendaItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         Category `json:"type"`
	StartTime        string   `json:"time"` // HH:MM
	DurationMinutes  int      `json:"duration"`
	Completed        bool     `json:"completed"`
	UnachievedReason string   `json:"reasonUnachieved,omitempty"`
}

// NewAgendaItem creates an incomplete agenda item with a fresh id.
func NewAgendaItem(title string, category Category, startTime string, durationMinutes int) AgendaItem {
	return AgendaItem{
		ID:              NewID(),
		Title:           title,
		Category:        category,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}
}

// HasReason reports whether an incomplete item carries a recorded reason.
func (a AgendaItem) HasReason() bool {
	return !a.Completed && strings.TrimSpace(a.UnachievedReason) != ""
}

// SortAgenda orders items by start time, keeping insertion order for ties.
func SortAgenda(items []AgendaItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime < items[j].StartTime
	})
}

// CompletedCount returns how many items are completed.
func CompletedCount(items []AgendaItem) int {
	n := 0
	for _, it := range items {
		if it.Completed {
			n++
		}
	}
	return n
}

// NewID returns a new unique entity id.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
