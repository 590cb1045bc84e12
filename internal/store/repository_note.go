// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/models"
)

const (
	notesTable = "notes"

	// sharedNoteID is the primary key of the only row in notesTable.
	sharedNoteID = 1
)

// defaultRetryDelays are the pauses between write attempts that failed with a
// [Retryable] error.
var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, time.Second}

// noteRepository is the SQL implementation of [NoteRepository]. It works on
// both PostgreSQL and SQLite; the placeholder format comes from [DB].
type noteRepository struct {
	db          *DB
	logger      *logger.Logger
	retryDelays []time.Duration
	now         func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:          db,
		logger:      logger,
		retryDelays: defaultRetryDelays,
		now:         time.Now,
	}
}

// GetNote returns the shared note, or [ErrNoteNotFound] if it was never
// saved.
func (r *noteRepository) GetNote(ctx context.Context) (models.StoredNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("text", "updated_at").
		From(notesTable).
		Where(sq.Eq{"id": sharedNoteID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error building query")
		return models.StoredNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.StoredNote
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.Text, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredNote{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error selecting note")
		return models.StoredNote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// SaveNote upserts the shared note. Writes failing with a [Retryable] error
// are attempted again after each of the retry delays, unless ctx is done.
func (r *noteRepository) SaveNote(ctx context.Context, text string) (models.StoredNote, error) {
	log := logger.FromContext(ctx)

	note := models.StoredNote{Text: text, UpdatedAt: r.now().UTC()}

	query, args, err := r.db.builder.
		Insert(notesTable).
		Columns("id", "text", "updated_at").
		Values(sharedNoteID, note.Text, note.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.SaveNote").Msg("error building query")
		return models.StoredNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 0; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return note, nil
		}

		if r.db.classify(err) != Retryable || attempt >= len(r.retryDelays) {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt+1).Msg("retrying note write")
		select {
		case <-ctx.Done():
			return models.StoredNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(r.retryDelays[attempt]):
		}
	}

	log.Err(err).Str("func", "*noteRepository.SaveNote").Msg("error saving note")
	return models.StoredNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
