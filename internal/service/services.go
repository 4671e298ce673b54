package service

import (
	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/store"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
)

type Services struct {
	CipherService   CipherService
	VaultService    VaultService
	EnvelopeService EnvelopeService
	AppInfoService  AppInfoService
}

// NewServices wires every service over one shared layered cipher. The cipher
// is stateless, so sharing it across goroutines is safe.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cipher := crypto.NewLayeredCipher(crypto.NewAESCBCPrimitive())

	return &Services{
		CipherService:   NewCipherTracingService(cfg.App, logger).Wrap(NewCipherService(cipher, cfg.App, logger)),
		VaultService:    NewVaultService(storages.PasswordEntries, cipher, utils.NewUUIDGenerator(), cfg.App, logger),
		EnvelopeService: NewEnvelopeService(storages.Envelopes, logger),
		AppInfoService:  appInfoService,
	}, nil
}
