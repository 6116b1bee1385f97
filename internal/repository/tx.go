package repository

import (
	"gorm.io/gorm"
)

// GormTxManager is the production TxManager backed by gorm transactions.
type GormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// Do runs fn inside one transaction, rolling back on error.
func (m *GormTxManager) Do(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
