package service

import (
	"context"

	"github.com/MKhiriev/go-qes-vault/models"
)

// CipherService encrypts and decrypts text and files with the layered cipher
// and compares layer counts side by side. A zero layer count in a request
// selects the configured default.
type CipherService interface {
	EncryptText(ctx context.Context, request models.EncryptionRequest) (models.Envelope, error)
	DecryptText(ctx context.Context, request models.DecryptionRequest) (string, error)

	EncryptFile(ctx context.Context, request models.FileEncryptionRequest) (models.EncryptedFile, error)
	DecryptFile(ctx context.Context, request models.FileDecryptionRequest) (models.DecryptedFile, error)

	Compare(ctx context.Context, request models.CompareRequest) (models.ComparisonReport, error)
}

// VaultService manages password entries. Secrets are encrypted with the
// caller's master password before they reach the repository.
type VaultService interface {
	Create(ctx context.Context, entry models.NewPasswordEntry) (models.PasswordEntry, error)
	List(ctx context.Context, filter models.PasswordEntryFilter) ([]models.PasswordEntry, error)
	Get(ctx context.Context, id string) (models.PasswordEntry, error)
	Reveal(ctx context.Context, id string, masterPassword string) (string, error)
	Delete(ctx context.Context, id string) error
}

// EnvelopeService keeps serialized .encrypted envelopes in the configured
// storage backend.
type EnvelopeService interface {
	Store(ctx context.Context, file models.EncryptedFile) error
	Fetch(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CipherServiceWrapper defines middleware composition for CipherService.
// Implementations wrap an existing CipherService to add behavior such as
// tracing or deadlines.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService // returns a decorated CipherService applying additional behavior
}

// IDGenerator issues identifiers for new password entries.
type IDGenerator interface {
	Generate() string
}
