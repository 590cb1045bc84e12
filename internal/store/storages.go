package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
)

// Storages bundles the repositories of the note server and the connection
// they share.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// Close closes the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
