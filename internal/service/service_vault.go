package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/store"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/MKhiriev/go-qes-vault/models"
)

type vaultService struct {
	repository    store.PasswordEntryRepository
	cipher        crypto.LayeredCipher
	validator     validators.Validator
	ids           IDGenerator
	defaultLayers int
	now           func() time.Time

	logger *logger.Logger
}

func NewVaultService(repository store.PasswordEntryRepository, cipher crypto.LayeredCipher, ids IDGenerator, cfg config.App, logger *logger.Logger) VaultService {
	defaultLayers := cfg.DefaultLayers
	if defaultLayers == 0 {
		defaultLayers = crypto.DefaultLayers
	}

	return &vaultService{
		repository:    repository,
		cipher:        cipher,
		validator:     validators.NewCipherRequestValidatorWithLimit(cfg.MaxLayers),
		ids:           ids,
		defaultLayers: defaultLayers,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}
}

// Create encrypts the entry's password with its master password and stores
// the resulting envelope. Neither password is persisted in plaintext.
func (s *vaultService) Create(ctx context.Context, newEntry models.NewPasswordEntry) (models.PasswordEntry, error) {
	log := logger.FromContext(ctx)

	if newEntry.Layers == 0 {
		newEntry.Layers = s.defaultLayers
	}
	if err := s.validator.Validate(ctx, newEntry); err != nil {
		return models.PasswordEntry{}, err
	}

	envelope, err := s.cipher.EncryptContext(ctx, []byte(newEntry.Password), newEntry.MasterPassword, newEntry.Layers)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Msg("failed to encrypt entry password")
		return models.PasswordEntry{}, err
	}

	now := s.now()
	entry := models.PasswordEntry{
		ID:        s.ids.Generate(),
		Name:      newEntry.Name,
		Username:  newEntry.Username,
		URL:       newEntry.URL,
		Envelope:  envelope,
		Algorithm: envelope.Algorithm,
		Layers:    newEntry.Layers,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.repository.Save(ctx, entry); err != nil {
		return models.PasswordEntry{}, err
	}

	log.Info().
		Str("func", "vaultService.Create").
		Str("entry_id", entry.ID).
		Int("layers", entry.Layers).
		Msg("password entry created")
	return entry, nil
}

func (s *vaultService) List(ctx context.Context, filter models.PasswordEntryFilter) ([]models.PasswordEntry, error) {
	return s.repository.List(ctx, filter)
}

func (s *vaultService) Get(ctx context.Context, id string) (models.PasswordEntry, error) {
	return s.repository.Get(ctx, id)
}

// Reveal decrypts a stored entry. The envelope's own layer count wins; the
// entry's recorded count only fills in envelopes written without one.
func (s *vaultService) Reveal(ctx context.Context, id string, masterPassword string) (string, error) {
	if masterPassword == "" {
		return "", validators.ErrEmptyMasterPassword
	}

	entry, err := s.repository.Get(ctx, id)
	if err != nil {
		return "", err
	}

	envelope, err := validators.ResolveEnvelope(entry.Envelope, entry.Layers)
	if err != nil {
		return "", err
	}

	password, err := s.cipher.DecryptTextContext(ctx, envelope, masterPassword)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "vaultService.Reveal").
			Str("entry_id", id).
			Msg("failed to reveal password entry")
		return "", err
	}
	return password, nil
}

func (s *vaultService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
