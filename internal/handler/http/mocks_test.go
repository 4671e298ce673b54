package http

import (
	"context"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockCipherService implements service.CipherService. Unset fn fields panic,
// which flags calls a test did not expect.
type mockCipherService struct {
	encryptTextFn func(ctx context.Context, request models.EncryptionRequest) (models.Envelope, error)
	decryptTextFn func(ctx context.Context, request models.DecryptionRequest) (string, error)
	encryptFileFn func(ctx context.Context, request models.FileEncryptionRequest) (models.EncryptedFile, error)
	decryptFileFn func(ctx context.Context, request models.FileDecryptionRequest) (models.DecryptedFile, error)
	compareFn     func(ctx context.Context, request models.CompareRequest) (models.ComparisonReport, error)
}

func (m *mockCipherService) EncryptText(ctx context.Context, request models.EncryptionRequest) (models.Envelope, error) {
	return m.encryptTextFn(ctx, request)
}

func (m *mockCipherService) DecryptText(ctx context.Context, request models.DecryptionRequest) (string, error) {
	return m.decryptTextFn(ctx, request)
}

func (m *mockCipherService) EncryptFile(ctx context.Context, request models.FileEncryptionRequest) (models.EncryptedFile, error) {
	return m.encryptFileFn(ctx, request)
}

func (m *mockCipherService) DecryptFile(ctx context.Context, request models.FileDecryptionRequest) (models.DecryptedFile, error) {
	return m.decryptFileFn(ctx, request)
}

func (m *mockCipherService) Compare(ctx context.Context, request models.CompareRequest) (models.ComparisonReport, error) {
	return m.compareFn(ctx, request)
}

// mockVaultService implements service.VaultService.
type mockVaultService struct {
	createFn func(ctx context.Context, entry models.NewPasswordEntry) (models.PasswordEntry, error)
	listFn   func(ctx context.Context, filter models.PasswordEntryFilter) ([]models.PasswordEntry, error)
	getFn    func(ctx context.Context, id string) (models.PasswordEntry, error)
	revealFn func(ctx context.Context, id string, masterPassword string) (string, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockVaultService) Create(ctx context.Context, entry models.NewPasswordEntry) (models.PasswordEntry, error) {
	return m.createFn(ctx, entry)
}

func (m *mockVaultService) List(ctx context.Context, filter models.PasswordEntryFilter) ([]models.PasswordEntry, error) {
	return m.listFn(ctx, filter)
}

func (m *mockVaultService) Get(ctx context.Context, id string) (models.PasswordEntry, error) {
	return m.getFn(ctx, id)
}

func (m *mockVaultService) Reveal(ctx context.Context, id string, masterPassword string) (string, error) {
	return m.revealFn(ctx, id, masterPassword)
}

func (m *mockVaultService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockEnvelopeService implements service.EnvelopeService.
type mockEnvelopeService struct {
	storeFn  func(ctx context.Context, file models.EncryptedFile) error
	fetchFn  func(ctx context.Context, name string) ([]byte, error)
	listFn   func(ctx context.Context) ([]string, error)
	deleteFn func(ctx context.Context, name string) error
}

func (m *mockEnvelopeService) Store(ctx context.Context, file models.EncryptedFile) error {
	return m.storeFn(ctx, file)
}

func (m *mockEnvelopeService) Fetch(ctx context.Context, name string) ([]byte, error) {
	return m.fetchFn(ctx, name)
}

func (m *mockEnvelopeService) List(ctx context.Context) ([]string, error) {
	return m.listFn(ctx)
}

func (m *mockEnvelopeService) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services with a nop logger
// and default limits.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

func intPtr(v int) *int { return &v }

// testEnvelope is a syntactically valid two-layer envelope.
func testEnvelope() models.Envelope {
	return models.Envelope{
		Ciphertext: "c2VjcmV0IGJ5dGVzIGhlcmUhIQ==",
		IV:         "000102030405060708090a0b0c0d0e0f",
		Salt:       "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		Algorithm:  "QES-512",
		Layers:     intPtr(2),
	}
}
