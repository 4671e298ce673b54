// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/MKhiriev/go-qes-vault/models"
)

const (
	// SaltSize is the length of the per-call PBKDF2 salt.
	SaltSize = 32
	// IVSize is the length of the IV shared by every layer.
	IVSize = 16
	// KeySize is the length of every per-layer AES-256 key.
	KeySize = 32
	// PBKDF2Iterations is the iteration count of every per-layer derivation.
	PBKDF2Iterations = 100000

	layerSuffix = "_layer_"
)

// layeredCipher is the private implementation of [LayeredCipher].
type layeredCipher struct {
	primitive  BlockCipherPrimitive
	iterations int
}

// NewLayeredCipher constructs a [LayeredCipher] on top of primitive using
// [PBKDF2Iterations] iterations per layer.
func NewLayeredCipher(primitive BlockCipherPrimitive) LayeredCipher {
	return &layeredCipher{
		primitive:  primitive,
		iterations: PBKDF2Iterations,
	}
}

// Encrypt implements [LayeredCipher].
func (c *layeredCipher) Encrypt(plaintext []byte, password string, layers int) (models.Envelope, error) {
	return c.EncryptContext(context.Background(), plaintext, password, layers)
}

// EncryptContext implements [LayeredCipher]. ctx is checked before every key
// derivation and every CBC pass.
func (c *layeredCipher) EncryptContext(ctx context.Context, plaintext []byte, password string, layers int) (models.Envelope, error) {
	if err := validateParams(password, layers); err != nil {
		return models.Envelope{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Envelope{}, err
	}

	salt, err := c.primitive.RandomBytes(SaltSize)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := c.primitive.RandomBytes(IVSize)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	keys, err := c.deriveLayerKeys(ctx, password, salt, layers)
	if err != nil {
		return models.Envelope{}, err
	}
	defer wipe(keys)

	// Every layer reuses the same IV.
	current := plaintext
	for i := 0; i < layers; i++ {
		if err = ctx.Err(); err != nil {
			return models.Envelope{}, fmt.Errorf("encrypt layer %d: %w", i, err)
		}
		current, err = c.primitive.EncryptCBC(current, keys[i], iv)
		if err != nil {
			return models.Envelope{}, fmt.Errorf("encrypt layer %d: %w", i, err)
		}
	}

	return models.Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(current),
		IV:         hex.EncodeToString(iv),
		Salt:       hex.EncodeToString(salt),
		Algorithm:  LabelFor(layers),
		Layers:     &layers,
	}, nil
}

// Decrypt implements [LayeredCipher].
func (c *layeredCipher) Decrypt(envelope models.Envelope, password string) ([]byte, error) {
	return c.DecryptContext(context.Background(), envelope, password)
}

// DecryptContext implements [LayeredCipher].
func (c *layeredCipher) DecryptContext(ctx context.Context, envelope models.Envelope, password string) ([]byte, error) {
	layers := envelope.LayerCount()
	if envelope.Layers == nil {
		return nil, ErrEnvelopeLayersMissing
	}
	if err := validateParams(password, layers); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ciphertext, iv, salt, err := decodeEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	keys, err := c.deriveLayerKeys(ctx, password, salt, layers)
	if err != nil {
		return nil, err
	}
	defer wipe(keys)

	current := ciphertext
	for i := layers - 1; i >= 0; i-- {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("decrypt layer %d: %w", i, err)
		}
		current, err = c.primitive.DecryptCBC(current, keys[i], iv)
		if err != nil {
			return nil, &LayerError{Layer: i, Err: err}
		}
	}

	return current, nil
}

// DecryptText implements [LayeredCipher].
func (c *layeredCipher) DecryptText(envelope models.Envelope, password string) (string, error) {
	return c.DecryptTextContext(context.Background(), envelope, password)
}

// DecryptTextContext implements [LayeredCipher].
func (c *layeredCipher) DecryptTextContext(ctx context.Context, envelope models.Envelope, password string) (string, error) {
	plaintext, err := c.DecryptContext(ctx, envelope, password)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrEncoding
	}
	return string(plaintext), nil
}

// DeriveLayerKeys implements [LayeredCipher]. Layer i uses the password
// suffixed with "_layer_<i>", layer 0 included, so every layer gets a
// distinct key from the one shared salt.
func (c *layeredCipher) DeriveLayerKeys(password string, salt []byte, layers int) ([][]byte, error) {
	return c.deriveLayerKeys(context.Background(), password, salt, layers)
}

// deriveLayerKeys stops between derivations once ctx is done and wipes the
// keys derived so far.
func (c *layeredCipher) deriveLayerKeys(ctx context.Context, password string, salt []byte, layers int) ([][]byte, error) {
	if err := validateParams(password, layers); err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrInvalidInput)
	}

	keys := make([][]byte, layers)
	for i := range keys {
		if err := ctx.Err(); err != nil {
			wipe(keys[:i])
			return nil, fmt.Errorf("derive layer %d key: %w", i, err)
		}
		keys[i] = c.primitive.PBKDF2(layerPassword(password, i), salt, c.iterations, KeySize)
	}
	return keys, nil
}

func layerPassword(password string, layer int) string {
	return password + layerSuffix + strconv.Itoa(layer)
}

func validateParams(password string, layers int) error {
	if password == "" {
		return fmt.Errorf("%w: empty password", ErrInvalidInput)
	}
	if layers < 1 {
		return fmt.Errorf("%w: layer count %d, want >= 1", ErrInvalidInput, layers)
	}
	return nil
}

func decodeEnvelope(envelope models.Envelope) (ciphertext, iv, salt []byte, err error) {
	ciphertext, err = base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode ciphertext: %v", ErrInvalidInput, err)
	}
	iv, err = hex.DecodeString(envelope.IV)
	if err != nil || len(iv) != IVSize {
		return nil, nil, nil, fmt.Errorf("%w: iv must be %d hex-encoded bytes", ErrInvalidInput, IVSize)
	}
	salt, err = hex.DecodeString(envelope.Salt)
	if err != nil || len(salt) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: salt must be non-empty hex", ErrInvalidInput)
	}
	return ciphertext, iv, salt, nil
}

func wipe(keys [][]byte) {
	for _, k := range keys {
		clear(k)
	}
}
