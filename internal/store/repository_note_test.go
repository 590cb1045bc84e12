// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shared-note/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &noteRepository{
		db: &DB{
			DB:                 db,
			dialect:            dialectPostgres,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger:      l,
		retryDelays: []time.Duration{time.Millisecond, time.Millisecond},
		now:         func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var selectNote = regexp.QuoteMeta("SELECT text, updated_at FROM notes WHERE id = $1")

func TestGetNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	rows := sqlmock.NewRows([]string{"text", "updated_at"}).AddRow("hello", fixedNow)
	mock.ExpectQuery(selectNote).WithArgs(sharedNoteID).WillReturnRows(rows)

	note, err := repo.GetNote(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "hello", note.Text)
	assert.Equal(t, fixedNow, note.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(selectNote).WithArgs(sharedNoteID).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background())

	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNote_QueryError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(selectNote).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetNote(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
}

func TestSaveNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectExec(`INSERT INTO notes .* ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(sharedNoteID, "draft", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	note, err := repo.SaveNote(context.Background(), "draft")

	require.NoError(t, err)
	assert.Equal(t, "draft", note.Text)
	assert.Equal(t, fixedNow, note.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveNote_RetriesRetryableErrors(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectExec("INSERT INTO notes").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO notes").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec("INSERT INTO notes").WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := repo.SaveNote(context.Background(), "draft")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveNote_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	for range len(repo.retryDelays) + 1 {
		mock.ExpectExec("INSERT INTO notes").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	_, err := repo.SaveNote(context.Background(), "draft")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveNote_NonRetryableFailsFast(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectExec("INSERT INTO notes").WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.SaveNote(context.Background(), "draft")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveNote_ContextCanceledDuringBackoff(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	repo.retryDelays = []time.Duration{time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectExec("INSERT INTO notes").WillReturnError(pgError(pgerrcode.CannotConnectNow))
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := repo.SaveNote(ctx, "draft")

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
