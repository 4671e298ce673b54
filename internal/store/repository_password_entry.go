package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/models"
)

// passwordEntryRepository is the database/sql implementation of
// [PasswordEntryRepository]. Queries are built with squirrel using the
// placeholder format of the connection's dialect, so the same code serves
// SQLite and PostgreSQL.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced.
type passwordEntryRepository struct {
	*DB
}

// NewPasswordEntryRepository constructs a [PasswordEntryRepository] backed by db.
func NewPasswordEntryRepository(db *DB) PasswordEntryRepository {
	return &passwordEntryRepository{DB: db}
}

// Save implements [PasswordEntryRepository].
func (r *passwordEntryRepository) Save(ctx context.Context, entry models.PasswordEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSavePasswordEntryQuery(r.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "passwordEntryRepository.Save").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return ErrEntryAlreadyExists
		}
		log.Err(err).
			Str("func", "passwordEntryRepository.Save").
			Str("entry_id", entry.ID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to insert password entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [PasswordEntryRepository].
func (r *passwordEntryRepository) Get(ctx context.Context, id string) (models.PasswordEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPasswordEntryQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "passwordEntryRepository.Get").Msg("failed to create query")
		return models.PasswordEntry{}, err
	}

	entry, err := scanPasswordEntry(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "passwordEntryRepository.Get").
			Str("entry_id", id).
			Msg("failed to scan password entry")
		return models.PasswordEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// List implements [PasswordEntryRepository].
func (r *passwordEntryRepository) List(ctx context.Context, filter models.PasswordEntryFilter) ([]models.PasswordEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPasswordEntriesQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "passwordEntryRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "passwordEntryRepository.List").
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to execute query for listing password entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.PasswordEntry, 0)
	for rows.Next() {
		entry, scanErr := scanPasswordEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "passwordEntryRepository.List").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "passwordEntryRepository.List").Msg("row iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Delete implements [PasswordEntryRepository].
func (r *passwordEntryRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePasswordEntryQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "passwordEntryRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "passwordEntryRepository.Delete").
			Str("entry_id", id).
			Msg("failed to delete password entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
