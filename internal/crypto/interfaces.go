// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"

	"github.com/MKhiriev/go-qes-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// BlockCipherPrimitive is the trusted symmetric primitive the layered
// construction is built on. It never implements block-cipher internals
// itself; implementations delegate to audited libraries.
type BlockCipherPrimitive interface {
	// EncryptCBC pads plaintext with PKCS7 and encrypts it with AES-256-CBC.
	// The result is deterministic for fixed inputs.
	EncryptCBC(plaintext, key, iv []byte) ([]byte, error)

	// DecryptCBC decrypts AES-256-CBC ciphertext and strips PKCS7 padding.
	// It fails with [ErrPadding] when the padding is malformed.
	DecryptCBC(ciphertext, key, iv []byte) ([]byte, error)

	// PBKDF2 stretches password and salt into a keyLen-byte key using
	// HMAC-SHA256. The result is deterministic for fixed inputs.
	PBKDF2(password string, salt []byte, iterations, keyLen int) []byte

	// RandomBytes reads n bytes from a cryptographically secure source.
	RandomBytes(n int) ([]byte, error)
}

// LayeredCipher chains N independent AES-256-CBC passes over one plaintext.
//
// Schema:
//
//	salt, iv  = RandomBytes(32), RandomBytes(16)     (once per call)
//	key[i]    = PBKDF2(password + "_layer_" + i, salt)
//	c         = CBC(...CBC(CBC(plaintext, key[0]), key[1])..., key[N-1])
//
// Decryption runs the chain in strict reverse order. One layer is plain
// AES-256, two layers is QES-512, more is the Hybrid preset.
//
// Implementations are stateless and safe for concurrent use.
type LayeredCipher interface {
	// Encrypt applies layers chained passes to plaintext and returns the
	// envelope. Empty plaintext is valid. Fails with [ErrInvalidInput] for an
	// empty password or layers < 1.
	Encrypt(plaintext []byte, password string, layers int) (models.Envelope, error)

	// EncryptContext is Encrypt that gives up with ctx.Err() once ctx is
	// done. The check runs between per-layer derivations and CBC passes.
	EncryptContext(ctx context.Context, plaintext []byte, password string, layers int) (models.Envelope, error)

	// Decrypt reverses the chain described by envelope. Any layer failing
	// yields an error matching [ErrDecryption]; no partial plaintext is
	// ever returned.
	Decrypt(envelope models.Envelope, password string) ([]byte, error)

	// DecryptContext is Decrypt bounded by ctx, see EncryptContext.
	DecryptContext(ctx context.Context, envelope models.Envelope, password string) ([]byte, error)

	// DecryptText is Decrypt followed by a UTF-8 check. Invalid text fails
	// with [ErrEncoding].
	DecryptText(envelope models.Envelope, password string) (string, error)

	// DecryptTextContext is DecryptText bounded by ctx.
	DecryptTextContext(ctx context.Context, envelope models.Envelope, password string) (string, error)

	// DeriveLayerKeys returns the per-layer keys for password and salt.
	DeriveLayerKeys(password string, salt []byte, layers int) ([][]byte, error)
}
