package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/store"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/MKhiriev/go-qes-vault/models"
)

type envelopeService struct {
	storage store.EnvelopeStorage

	logger *logger.Logger
}

func NewEnvelopeService(storage store.EnvelopeStorage, logger *logger.Logger) EnvelopeService {
	return &envelopeService{
		storage: storage,
		logger:  logger,
	}
}

// Store serializes the envelope in the same indented form offered for
// download and writes it under file.Name.
func (s *envelopeService) Store(ctx context.Context, file models.EncryptedFile) error {
	if err := validators.ValidateEnvelopeFileName(file.Name); err != nil {
		return err
	}

	data, err := MarshalEnvelope(file.Envelope)
	if err != nil {
		return err
	}

	if err = s.storage.Put(ctx, file.Name, data); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "envelopeService.Store").
		Str("name", file.Name).
		Int("size", len(data)).
		Msg("envelope stored")
	return nil
}

func (s *envelopeService) Fetch(ctx context.Context, name string) ([]byte, error) {
	return s.storage.Get(ctx, name)
}

func (s *envelopeService) List(ctx context.Context) ([]string, error) {
	return s.storage.List(ctx)
}

func (s *envelopeService) Delete(ctx context.Context, name string) error {
	return s.storage.Delete(ctx, name)
}

// MarshalEnvelope renders an envelope as the pretty-printed JSON document
// used for .encrypted files.
func MarshalEnvelope(envelope models.Envelope) ([]byte, error) {
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return append(data, '\n'), nil
}
