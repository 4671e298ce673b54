package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
)

// Storages aggregates every persistence dependency of the service layer.
type Storages struct {
	PasswordEntries PasswordEntryRepository
	Envelopes       EnvelopeStorage

	db *DB
}

// NewStorages opens the database, applies migrations and constructs the
// configured envelope backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("failed to migrate database")
		return nil, err
	}

	envelopes, err := NewEnvelopeStorage(ctx, cfg.Files, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		PasswordEntries: NewPasswordEntryRepository(db),
		Envelopes:       envelopes,
		db:              db,
	}, nil
}

// NewEnvelopeStorage returns the backend selected by cfg.Backend.
func NewEnvelopeStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (EnvelopeStorage, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return NewLocalEnvelopeStorage(cfg.EnvelopeDir, log)
	case config.BackendS3:
		return NewS3EnvelopeStorage(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
