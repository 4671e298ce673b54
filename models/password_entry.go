// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordEntry is a vault record whose secret is stored only as an
// [Envelope] encrypted with the owner's master password.
type PasswordEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username,omitempty"`
	URL       string    `json:"url,omitempty"`
	Envelope  Envelope  `json:"envelope"`
	Algorithm string    `json:"algorithm"`
	Layers    int       `json:"layers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPasswordEntry is the plaintext input for creating a [PasswordEntry].
// Password and MasterPassword never leave the service layer unencrypted.
type NewPasswordEntry struct {
	Name           string `json:"name"`
	Username       string `json:"username,omitempty"`
	URL            string `json:"url,omitempty"`
	Password       string `json:"password"`
	MasterPassword string `json:"master_password"`
	Layers         int    `json:"layers"`
}

// PasswordEntryFilter narrows a listing of vault entries.
type PasswordEntryFilter struct {
	// NameContains matches entries whose name contains the substring.
	NameContains string
	// Limit caps the number of returned entries; zero means no limit.
	Limit uint64
}
