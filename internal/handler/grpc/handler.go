package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/models"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// requestTimeout bounds a single call; zero leaves only the client deadline.
	requestTimeout time.Duration

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// server settings and logger, and returns the initialized instance.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// Encrypt encrypts request.Plaintext and returns the envelope.
func (h *Handler) Encrypt(ctx context.Context, request *models.EncryptionRequest) (*models.Envelope, error) {
	envelope, err := h.services.CipherService.EncryptText(ctx, *request)
	if err != nil {
		return nil, statusError(ctx, "*Handler.Encrypt", err)
	}
	return &envelope, nil
}

// Decrypt reverses the envelope in request and returns the plaintext.
func (h *Handler) Decrypt(ctx context.Context, request *models.DecryptionRequest) (*models.DecryptionResponse, error) {
	plaintext, err := h.services.CipherService.DecryptText(ctx, *request)
	if err != nil {
		return nil, statusError(ctx, "*Handler.Decrypt", err)
	}
	return &models.DecryptionResponse{Plaintext: plaintext}, nil
}
