// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptionRequest is the per-call input of a text encryption.
type EncryptionRequest struct {
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`
	Layers    int    `json:"layers"`
}

// DecryptionRequest is the per-call input of a text decryption.
//
// AssumeLayers is consulted only when the envelope carries no layer count;
// zero means "reject such envelopes".
type DecryptionRequest struct {
	Envelope     Envelope `json:"envelope"`
	Password     string   `json:"password"`
	AssumeLayers int      `json:"assume_layers,omitempty"`
}

// DecryptionResponse carries recovered plaintext back to an API caller.
type DecryptionResponse struct {
	Plaintext string `json:"plaintext"`
}

// CompareRequest asks for an AES-256 vs QES-512 comparison of one plaintext.
type CompareRequest struct {
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`
	// Layers lists the layer counts to compare. Empty means {1, 2}.
	Layers []int `json:"layers,omitempty"`
}

// RevealRequest asks to decrypt a stored vault entry.
type RevealRequest struct {
	MasterPassword string `json:"master_password"`
}

// RevealResponse carries a decrypted vault secret.
type RevealResponse struct {
	Password string `json:"password"`
}

// StoredFiles lists the envelope names held by the envelope storage.
type StoredFiles struct {
	Files []string `json:"files"`
}

// FileEncryptionRequest is the input of a file encryption. Data holds the
// raw file bytes; Name is the original file name.
type FileEncryptionRequest struct {
	Name     string
	Data     []byte
	Password string
	Layers   int
}

// FileDecryptionRequest is the input of a file decryption. Data holds the
// serialized .encrypted envelope.
type FileDecryptionRequest struct {
	Name         string
	Data         []byte
	Password     string
	AssumeLayers int
}

// DecryptedFile is a recovered file and the name it should be saved under.
type DecryptedFile struct {
	Name string
	Data []byte
}
