// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// remote qes-vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnprocessable] for a wrong password, [ErrBadRequest] for
// rejected input).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qes-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the qes-vault
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)

	// EncryptText sends plaintext, password and layer count to the server and
	// returns the resulting envelope. A zero layer count lets the server pick
	// its configured default.
	EncryptText(ctx context.Context, req models.EncryptionRequest) (models.Envelope, error)

	// DecryptText sends an envelope and password to the server and returns
	// the recovered plaintext. A wrong password surfaces as [ErrUnprocessable].
	DecryptText(ctx context.Context, req models.DecryptionRequest) (string, error)

	// Compare asks the server to encrypt the same plaintext with several
	// layer counts and returns the side-by-side report.
	Compare(ctx context.Context, req models.CompareRequest) (models.ComparisonReport, error)
}
