// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors of the layered cipher. Callers match them with [errors.Is].
var (
	// ErrInvalidInput is returned before any cryptographic work when the
	// password is empty, the layer count is not positive or an envelope
	// field cannot be decoded.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecryption is returned when any layer fails to decrypt: wrong
	// password, corrupted ciphertext or mismatched layer count.
	ErrDecryption = errors.New("wrong password or corrupted data")

	// ErrEncoding is returned when decrypted bytes cannot be represented in
	// the expected encoding (UTF-8 text or base64 file content).
	ErrEncoding = errors.New("decrypted data has unexpected encoding")

	// ErrPadding is returned by [BlockCipherPrimitive.DecryptCBC] when the
	// PKCS7 padding is malformed.
	ErrPadding = errors.New("invalid PKCS7 padding")

	// ErrEnvelopeLayersMissing is returned when an envelope does not state
	// its layer count and the caller did not supply one explicitly.
	ErrEnvelopeLayersMissing = fmt.Errorf("%w: envelope has no layer count", ErrInvalidInput)
)

// LayerError reports which layer of the chain failed. The layer index is
// for diagnostics only; every wrong-password failure matches [ErrDecryption]
// regardless of the layer.
type LayerError struct {
	Layer int
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("layer %d: %v", e.Layer, e.Err)
}

// Unwrap exposes both [ErrDecryption] and the underlying cause.
func (e *LayerError) Unwrap() []error {
	return []error{ErrDecryption, e.Err}
}
