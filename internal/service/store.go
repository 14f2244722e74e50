package service

import (
	"sync"

	"gorm.io/gorm"
)

// Store is the shared handle to the in-memory state snapshot. Every mutating
// operation on the catalog, intake registry, sales ledger, and audit trail
// runs through WithLock, so those four collections always change as one unit
// and no caller ever observes a partial update.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the handle for read-only snapshots.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// WithLock runs fn inside the store-wide mutex and a database transaction.
// The mutex serializes mutations across services; the transaction rolls the
// batch back if fn returns an error.
func (s *Store) WithLock(fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Transaction(fn)
}
