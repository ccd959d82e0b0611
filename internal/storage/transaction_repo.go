package storage

import (
	"fmt"
	"slices"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
)

// TransactionRepo provides operations for the transaction list.
type TransactionRepo struct {
	slot *Slot[[]model.Transaction]
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(db *DB) *TransactionRepo {
	return &TransactionRepo{
		slot: NewSlot(db, model.KeyTransactions, model.SeedTransactions, validateTransactions),
	}
}

func validateTransactions(txs []model.Transaction) error {
	for i, tx := range txs {
		if tx.ID == "" {
			return fmt.Errorf("transaction %d has no id", i)
		}
	}
	return nil
}

// Get returns a copy of the transactions in insertion order.
func (r *TransactionRepo) Get() []model.Transaction {
	return slices.Clone(r.slot.Get())
}

// Set replaces all transactions.
func (r *TransactionRepo) Set(txs []model.Transaction) error {
	return r.slot.Set(slices.Clone(txs))
}

// Reset restores the sample transactions.
func (r *TransactionRepo) Reset() error {
	return r.slot.Reset()
}

// Add appends a transaction.
func (r *TransactionRepo) Add(tx model.Transaction) (model.Transaction, error) {
	if tx.ID == "" {
		tx.ID = model.NewID()
	}
	if err := r.Set(append(r.Get(), tx)); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// Delete removes a transaction by id or unique id prefix.
func (r *TransactionRepo) Delete(id string) (model.Transaction, error) {
	txs := r.Get()
	i, err := findByID(txs, id, transactionID, errors.ErrTransactionNotFound)
	if err != nil {
		return model.Transaction{}, err
	}
	removed := txs[i]
	if err := r.Set(slices.Delete(txs, i, i+1)); err != nil {
		return model.Transaction{}, err
	}
	return removed, nil
}

func transactionID(tx model.Transaction) string { return tx.ID }
