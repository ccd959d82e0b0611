// Package model defines the domain models for Zenith.
package model

import "fmt"

// KeyPrefix is the namespace shared by every persisted slot.
const KeyPrefix = "zenith"

// Slot keys, one per domain.
const (
	KeyAgenda       = KeyPrefix + ":agenda"
	KeyAchievements = KeyPrefix + ":achievements"
	KeyJournal      = KeyPrefix + ":journal"
	KeyTransactions = KeyPrefix + ":transactions"
)

// Domain identifies one of the four independent data collections.
type Domain string

const (
	DomainAgenda     Domain = "agenda"
	DomainHighlights Domain = "highlights"
	DomainJournal    Domain = "journal"
	DomainFinance    Domain = "finance"
)

// Domains lists every domain in display order.
var Domains = []Domain{DomainAgenda, DomainHighlights, DomainJournal, DomainFinance}

// Key returns the slot key backing the domain.
func (d Domain) Key() string {
	switch d {
	case DomainAgenda:
		return KeyAgenda
	case DomainHighlights:
		return KeyAchievements
	case DomainJournal:
		return KeyJournal
	case DomainFinance:
		return KeyTransactions
	}
	return ""
}

// Title returns the human-readable domain name.
func (d Domain) Title() string {
	switch d {
	case DomainAgenda:
		return "Agenda"
	case DomainHighlights:
		return "Highlights"
	case DomainJournal:
		return "Journal"
	case DomainFinance:
		return "Finance"
	}
	return string(d)
}

// ParseDomain parses a domain name. "achievements", "tasks" and "transactions"
// are accepted as aliases.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "agenda", "tasks":
		return DomainAgenda, nil
	case "highlights", "achievements":
		return DomainHighlights, nil
	case "journal":
		return DomainJournal, nil
	case "finance", "transactions":
		return DomainFinance, nil
	}
	return "", fmt.Errorf("unknown domain %q", s)
}
