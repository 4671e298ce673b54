// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPassword targets the encryption password of a request.
	FieldPassword = "password"

	// FieldMasterPassword targets the vault master password.
	FieldMasterPassword = "master_password"

	// FieldLayers targets the layer count of a request or envelope.
	FieldLayers = "layers"

	// FieldCiphertext targets the envelope ciphertext.
	FieldCiphertext = "ciphertext"

	// FieldIV targets the envelope IV.
	FieldIV = "iv"

	// FieldSalt targets the envelope salt.
	FieldSalt = "salt"

	// FieldEnvelope targets a nested envelope as a whole.
	FieldEnvelope = "envelope"

	// FieldName targets the display name of a vault entry.
	FieldName = "name"
)

// DefaultMaxLayers is the server's ceiling on caller-supplied layer counts.
// Each layer costs a full PBKDF2 derivation, so an unbounded count is a
// cheap way to pin a CPU. The cipher itself has no ceiling.
const DefaultMaxLayers = 16

// CipherRequestValidator implements [Validator] for every request model that
// reaches the cipher: envelopes, encryption, decryption, comparison and
// vault entry creation.
type CipherRequestValidator struct {
	// maxLayers is the ceiling on layer counts; zero means none.
	maxLayers int
}

// NewCipherRequestValidator constructs a CipherRequestValidator bounded by
// [DefaultMaxLayers] and returns it as the Validator interface.
func NewCipherRequestValidator() Validator {
	return NewCipherRequestValidatorWithLimit(DefaultMaxLayers)
}

// NewCipherRequestValidatorWithLimit is NewCipherRequestValidator with an
// explicit layer ceiling. maxLayers <= 0 lifts the ceiling.
func NewCipherRequestValidatorWithLimit(maxLayers int) Validator {
	return &CipherRequestValidator{maxLayers: max(maxLayers, 0)}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each supported model are accepted. Returns ErrUnsupportedType for
// anything else.
func (v *CipherRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Envelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.Envelope:
		return v.validateEnvelope(ctx, *value, fields...)

	case models.EncryptionRequest:
		return v.validateEncryptionRequest(ctx, value, fields...)
	case *models.EncryptionRequest:
		return v.validateEncryptionRequest(ctx, *value, fields...)

	case models.DecryptionRequest:
		return v.validateDecryptionRequest(ctx, value, fields...)
	case *models.DecryptionRequest:
		return v.validateDecryptionRequest(ctx, *value, fields...)

	case models.CompareRequest:
		return v.validateCompareRequest(ctx, value, fields...)
	case *models.CompareRequest:
		return v.validateCompareRequest(ctx, *value, fields...)

	case models.NewPasswordEntry:
		return v.validateNewPasswordEntry(ctx, value, fields...)
	case *models.NewPasswordEntry:
		return v.validateNewPasswordEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEnvelope checks the structure of an envelope without touching the
// password. Default fields: Ciphertext, IV, Salt, Layers.
//
// Layers is only checked when present; an absent count is resolved by the
// caller (see ParseEnvelope).
func (v *CipherRequestValidator) validateEnvelope(_ context.Context, envelope models.Envelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCiphertext, FieldIV, FieldSalt, FieldLayers}
	}

	for _, f := range fields {
		switch f {
		case FieldCiphertext:
			if envelope.Ciphertext == "" {
				return ErrEmptyCiphertext
			}
			raw, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
			if err != nil || len(raw) == 0 || len(raw)%16 != 0 {
				return ErrInvalidCiphertext
			}
		case FieldIV:
			if !isHexOfSize(envelope.IV, crypto.IVSize) {
				return ErrInvalidIV
			}
		case FieldSalt:
			if !isHexOfSize(envelope.Salt, crypto.SaltSize) {
				return ErrInvalidSalt
			}
		case FieldLayers:
			if envelope.Layers != nil {
				if err := v.validateLayers(*envelope.Layers); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEncryptionRequest: default fields Password, Layers.
func (v *CipherRequestValidator) validateEncryptionRequest(_ context.Context, request models.EncryptionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldLayers}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldLayers:
			if err := v.validateLayers(request.Layers); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDecryptionRequest: default fields Password, Envelope, Layers.
// FieldLayers checks AssumeLayers, which may be zero.
func (v *CipherRequestValidator) validateDecryptionRequest(ctx context.Context, request models.DecryptionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldEnvelope, FieldLayers}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEnvelope:
			if err := v.validateEnvelope(ctx, request.Envelope); err != nil {
				return fmt.Errorf("envelope: %w", err)
			}
		case FieldLayers:
			if request.AssumeLayers != 0 {
				if err := v.validateLayers(request.AssumeLayers); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCompareRequest: default fields Password, Layers.
func (v *CipherRequestValidator) validateCompareRequest(_ context.Context, request models.CompareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldLayers}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldLayers:
			for i, layers := range request.Layers {
				if err := v.validateLayers(layers); err != nil {
					return fmt.Errorf("layers at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNewPasswordEntry: default fields Name, Password, MasterPassword, Layers.
func (v *CipherRequestValidator) validateNewPasswordEntry(_ context.Context, entry models.NewPasswordEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword, FieldMasterPassword, FieldLayers}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(entry.Name) == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if entry.Password == "" {
				return ErrEmptyPassword
			}
		case FieldMasterPassword:
			if entry.MasterPassword == "" {
				return ErrEmptyMasterPassword
			}
		case FieldLayers:
			if err := v.validateLayers(entry.Layers); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateEnvelopeFileName accepts plain file names ending in
// models.EnvelopeFileSuffix. Paths, dot entries and a bare suffix are
// rejected so storage backends never escape their root. Hidden names are
// rejected too: every backend lists exactly the names it accepts.
func ValidateEnvelopeFileName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return ErrInvalidFileName
	}
	if strings.HasPrefix(name, ".") {
		return ErrInvalidFileName
	}
	if !strings.HasSuffix(name, models.EnvelopeFileSuffix) || name == models.EnvelopeFileSuffix {
		return ErrInvalidFileName
	}
	return nil
}

func (v *CipherRequestValidator) validateLayers(layers int) error {
	if layers < 1 {
		return ErrInvalidLayers
	}
	if v.maxLayers > 0 && layers > v.maxLayers {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLayers, layers, v.maxLayers)
	}
	return nil
}

func isHexOfSize(s string, size int) bool {
	raw, err := hex.DecodeString(s)
	return err == nil && len(raw) == size
}
