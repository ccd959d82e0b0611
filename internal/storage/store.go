package storage

import (
	"fmt"
	"time"

	"github.com/manav03panchal/zenith/internal/model"
)

// BackupVersion is the current backup document version.
const BackupVersion = 1

// Store groups the four domain repositories over one database.
type Store struct {
	Agenda       *AgendaRepo
	Achievements *AchievementRepo
	Journal      *JournalRepo
	Transactions *TransactionRepo
}

// NewStore builds the domain store. Slots are read lazily on first access.
func NewStore(db *DB) *Store {
	return &Store{
		Agenda:       NewAgendaRepo(db),
		Achievements: NewAchievementRepo(db),
		Journal:      NewJournalRepo(db),
		Transactions: NewTransactionRepo(db),
	}
}

// Load reads every slot so that seeds are persisted on first run.
func (s *Store) Load() {
	s.Agenda.Get()
	s.Achievements.Get()
	s.Journal.Get()
	s.Transactions.Get()
}

// Reset restores one domain to its seed value.
func (s *Store) Reset(d model.Domain) error {
	switch d {
	case model.DomainAgenda:
		return s.Agenda.Reset()
	case model.DomainHighlights:
		return s.Achievements.Reset()
	case model.DomainJournal:
		return s.Journal.Reset()
	case model.DomainFinance:
		return s.Transactions.Reset()
	default:
		return fmt.Errorf("unknown domain %q", d)
	}
}

// Backup is a full copy of every domain.
type Backup struct {
	Version      int                 `json:"version"`
	ExportedAt   time.Time           `json:"exported_at"`
	Agenda       []model.AgendaItem  `json:"agenda"`
	Achievements []model.Achievement `json:"achievements"`
	Journal      model.JournalEntry  `json:"journal"`
	Transactions []model.Transaction `json:"transactions"`
}

// Snapshot captures the current contents of every domain.
func (s *Store) Snapshot() Backup {
	return Backup{
		Version:      BackupVersion,
		ExportedAt:   time.Now().UTC(),
		Agenda:       s.Agenda.Get(),
		Achievements: s.Achievements.Get(),
		Journal:      s.Journal.Get(),
		Transactions: s.Transactions.Get(),
	}
}
