// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/MKhiriev/go-qes-vault/models"
)

// decryptedFilePrefix names recovered files whose envelope name lacks the
// .encrypted suffix.
const decryptedFilePrefix = "decrypted_"

// defaultCompareLayers are the presets compared when a request names none:
// AES-256 against QES-512.
var defaultCompareLayers = []int{1, 2}

type cipherService struct {
	cipher        crypto.LayeredCipher
	validator     validators.Validator
	defaultLayers int

	logger *logger.Logger
}

// NewCipherService constructs the core [CipherService] over cipher. It checks
// requests and runs the cipher; tracing and deadlines are added by
// [NewCipherTracingService]. A zero cfg.MaxLayers leaves layer counts
// unbounded.
func NewCipherService(cipher crypto.LayeredCipher, cfg config.App, logger *logger.Logger) CipherService {
	defaultLayers := cfg.DefaultLayers
	if defaultLayers == 0 {
		defaultLayers = crypto.DefaultLayers
	}

	return &cipherService{
		cipher:        cipher,
		validator:     validators.NewCipherRequestValidatorWithLimit(cfg.MaxLayers),
		defaultLayers: defaultLayers,
		logger:        logger,
	}
}

func (s *cipherService) EncryptText(ctx context.Context, request models.EncryptionRequest) (models.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return models.Envelope{}, err
	}

	request.Layers = s.layersOrDefault(request.Layers)
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Envelope{}, err
	}

	return s.cipher.EncryptContext(ctx, []byte(request.Plaintext), request.Password, request.Layers)
}

func (s *cipherService) DecryptText(ctx context.Context, request models.DecryptionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.validator.Validate(ctx, request, validators.FieldPassword, validators.FieldLayers); err != nil {
		return "", err
	}
	envelope, err := validators.ResolveEnvelope(request.Envelope, request.AssumeLayers)
	if err != nil {
		return "", err
	}
	if err = s.validator.Validate(ctx, envelope, validators.FieldLayers); err != nil {
		return "", err
	}

	return s.cipher.DecryptTextContext(ctx, envelope, request.Password)
}

// EncryptFile base64-encodes the file before encryption, so the recovered
// bytes can be checked for integrity of the encoding after decryption.
func (s *cipherService) EncryptFile(ctx context.Context, request models.FileEncryptionRequest) (models.EncryptedFile, error) {
	if err := ctx.Err(); err != nil {
		return models.EncryptedFile{}, err
	}

	layers := s.layersOrDefault(request.Layers)
	if err := s.validator.Validate(ctx, models.EncryptionRequest{Password: request.Password, Layers: layers}); err != nil {
		return models.EncryptedFile{}, err
	}

	name := filepath.Base(request.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return models.EncryptedFile{}, validators.ErrInvalidFileName
	}

	encoded := utils.EncodeBase64Chunked(request.Data)
	envelope, err := s.cipher.EncryptContext(ctx, []byte(encoded), request.Password, layers)
	if err != nil {
		return models.EncryptedFile{}, err
	}

	return models.EncryptedFile{
		Name:     name + models.EnvelopeFileSuffix,
		Envelope: envelope,
	}, nil
}

// DecryptFile parses the envelope in request.Data, reverses the chain and
// decodes the base64 content. A successful decryption that yields invalid
// base64 means a wrong password slipped through the padding check and is
// reported as crypto.ErrEncoding.
func (s *cipherService) DecryptFile(ctx context.Context, request models.FileDecryptionRequest) (models.DecryptedFile, error) {
	if err := ctx.Err(); err != nil {
		return models.DecryptedFile{}, err
	}

	if request.Password == "" {
		return models.DecryptedFile{}, validators.ErrEmptyPassword
	}
	envelope, err := validators.ParseEnvelope(request.Data, request.AssumeLayers)
	if err != nil {
		return models.DecryptedFile{}, err
	}
	if err = s.validator.Validate(ctx, envelope, validators.FieldLayers); err != nil {
		return models.DecryptedFile{}, err
	}

	encoded, err := s.cipher.DecryptContext(ctx, envelope, request.Password)
	if err != nil {
		return models.DecryptedFile{}, err
	}

	data, err := utils.DecodeBase64Chunked(encoded)
	if err != nil {
		return models.DecryptedFile{}, fmt.Errorf("%w: %w", crypto.ErrEncoding, err)
	}

	return models.DecryptedFile{
		Name: decryptedFileName(request.Name),
		Data: data,
	}, nil
}

// Compare encrypts the same plaintext once per requested layer count, times
// both directions and measures the ciphertext entropy.
func (s *cipherService) Compare(ctx context.Context, request models.CompareRequest) (models.ComparisonReport, error) {
	if err := ctx.Err(); err != nil {
		return models.ComparisonReport{}, err
	}

	if len(request.Layers) == 0 {
		request.Layers = defaultCompareLayers
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.ComparisonReport{}, err
	}

	plaintext := []byte(request.Plaintext)
	report := models.ComparisonReport{
		PlaintextSize: len(plaintext),
		Results:       make([]models.AlgorithmReport, 0, len(request.Layers)),
	}

	for _, layers := range request.Layers {
		if err := ctx.Err(); err != nil {
			return models.ComparisonReport{}, err
		}

		result, err := s.measure(ctx, plaintext, request.Password, layers)
		if err != nil {
			return models.ComparisonReport{}, err
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (s *cipherService) measure(ctx context.Context, plaintext []byte, password string, layers int) (models.AlgorithmReport, error) {
	start := time.Now()
	envelope, err := s.cipher.EncryptContext(ctx, plaintext, password, layers)
	if err != nil {
		return models.AlgorithmReport{}, err
	}
	encryptDuration := time.Since(start)

	start = time.Now()
	decrypted, err := s.cipher.DecryptContext(ctx, envelope, password)
	if err != nil {
		return models.AlgorithmReport{}, err
	}
	decryptDuration := time.Since(start)

	if !bytes.Equal(decrypted, plaintext) {
		return models.AlgorithmReport{}, ErrRoundTripMismatch
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return models.AlgorithmReport{}, fmt.Errorf("%w: %w", crypto.ErrEncoding, err)
	}

	return models.AlgorithmReport{
		Algorithm:       crypto.LabelFor(layers),
		Layers:          layers,
		CiphertextSize:  len(ciphertext),
		EncryptDuration: encryptDuration,
		DecryptDuration: decryptDuration,
		Entropy:         crypto.ShannonEntropy(ciphertext),
		Histogram:       crypto.ByteHistogram(ciphertext),
	}, nil
}

func (s *cipherService) layersOrDefault(layers int) int {
	if layers == 0 {
		return s.defaultLayers
	}
	return layers
}

func decryptedFileName(envelopeName string) string {
	name := filepath.Base(envelopeName)
	if base, ok := strings.CutSuffix(name, models.EnvelopeFileSuffix); ok && base != "" {
		return base
	}
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "file"
	}
	return decryptedFilePrefix + name
}
