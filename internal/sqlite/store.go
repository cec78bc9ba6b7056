package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fabline/consign/pkg/types"
)

// DBFileName is the SQLite database file created inside DataDir.
const DBFileName = "consign.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the Registry, Writer, and Reader contracts on a
// single SQLite database. One open store serves one admin at a time;
// the mutex serializes writers while reads share the read lock.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
}

// NewStore creates a new SQLite store instance. The store is not
// usable until Open is called with a Config.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store with the given configuration. Creates
// DataDir if it does not exist, opens the database, and applies the
// schema. Returns ErrAlreadyOpen if already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The pragma goes in the DSN so every pooled connection enforces
	// referential integrity; the writer still cascades explicitly
	// inside transactions.
	dbPath := filepath.Join(dataDir, DBFileName)
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply indexes: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.open = true

	return nil
}

// Close releases the database connection. After Close, all operations
// return ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.open = false

	return nil
}

// requireOpen returns ErrStoreClosed if the store is not open.
// The caller must hold s.mu (read or write lock).
func (s *Store) requireOpen() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}

// requireAdmin rejects mutations carried out without a valid claim.
func requireAdmin(claim types.AdminClaim) error {
	if !claim.Valid() {
		return types.ErrUnauthorized
	}
	return nil
}

// newUUID generates a UUID v7 string for entity IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// timeLayout is fixed-width RFC 3339 with nanoseconds. RFC3339Nano
// trims trailing zeros, which breaks lexicographic ordering on the
// stored text; the fixed width keeps ORDER BY created_at correct.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime renders a timestamp for storage as fixed-width UTC text.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp back.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
