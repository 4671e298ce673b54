// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/crypto"
)

// Sentinel errors raised while reading requests, before the service layer
// is reached. Request-shape errors wrap crypto.ErrInvalidInput so that they
// map to 400 like any other invalid input.
var (
	// ErrInvalidJSON is returned when a request body is not the expected JSON.
	ErrInvalidJSON = fmt.Errorf("%w: invalid JSON was passed", crypto.ErrInvalidInput)

	// ErrInvalidForm is returned when a multipart form cannot be parsed or a
	// numeric form field is not a number.
	ErrInvalidForm = fmt.Errorf("%w: invalid multipart form", crypto.ErrInvalidInput)

	// ErrFileRequired is returned when a multipart upload has no "file" part.
	ErrFileRequired = fmt.Errorf("%w: file is required", crypto.ErrInvalidInput)

	// ErrUploadTooLarge is returned when the request body exceeds the
	// configured upload limit.
	ErrUploadTooLarge = errors.New("upload too large")
)
