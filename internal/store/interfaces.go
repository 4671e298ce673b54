// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the SQL-backed password entry
// repository and the envelope storage backends (local directory and S3).
package store

import (
	"context"

	"github.com/MKhiriev/go-qes-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PasswordEntryRepository persists vault entries. Secrets are stored only as
// envelopes; the repository never sees a plaintext password.
type PasswordEntryRepository interface {
	// Save inserts a new entry. Returns ErrEntryAlreadyExists when the name
	// is taken.
	Save(ctx context.Context, entry models.PasswordEntry) error

	// Get returns the entry with the given id or ErrEntryNotFound.
	Get(ctx context.Context, id string) (models.PasswordEntry, error)

	// List returns entries matching filter, ordered by name.
	List(ctx context.Context, filter models.PasswordEntryFilter) ([]models.PasswordEntry, error)

	// Delete removes the entry with the given id or returns ErrEntryNotFound.
	Delete(ctx context.Context, id string) error
}

// EnvelopeStorage keeps serialized .encrypted envelopes under plain file
// names. Implementations reject names that are paths or lack the suffix.
type EnvelopeStorage interface {
	// Put stores data under name, replacing any previous object.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the object stored under name or ErrEnvelopeNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// List returns every stored envelope name in lexical order.
	List(ctx context.Context) ([]string, error)

	// Delete removes name or returns ErrEnvelopeNotFound.
	Delete(ctx context.Context, name string) error
}

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
