// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/models"
)

// ParseEnvelope decodes a .encrypted document.
//
// Decoding is strict: unknown fields and trailing data are rejected. When
// the document carries no "layers" field the envelope is ambiguous and the
// call fails with crypto.ErrEnvelopeLayersMissing, unless assumeLayers >= 1
// is supplied, in which case that count is used.
func ParseEnvelope(data []byte, assumeLayers int) (models.Envelope, error) {
	var envelope models.Envelope

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&envelope); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.Envelope{}, fmt.Errorf("%w: trailing data", ErrMalformedEnvelope)
	}

	return ResolveEnvelope(envelope, assumeLayers)
}

// ResolveEnvelope validates an already decoded envelope and fills in a
// missing layer count from assumeLayers. See ParseEnvelope. Only the
// structure is checked: any layer count >= 1 passes, and callers that bound
// the count apply their own validator.
func ResolveEnvelope(envelope models.Envelope, assumeLayers int) (models.Envelope, error) {
	if envelope.Layers == nil {
		if assumeLayers < 1 {
			return models.Envelope{}, crypto.ErrEnvelopeLayersMissing
		}
		envelope = envelope.WithLayers(assumeLayers)
	}

	if err := NewCipherRequestValidatorWithLimit(0).Validate(context.Background(), envelope); err != nil {
		return models.Envelope{}, err
	}
	return envelope, nil
}
