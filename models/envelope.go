// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvelopeFileSuffix is appended to the original file name when an encrypted
// envelope is written to disk or offered for download.
const EnvelopeFileSuffix = ".encrypted"

// Envelope is the persisted result of a layered encryption. It is the only
// artifact that outlives an encrypt call and carries everything needed, besides
// the password, to re-derive the per-layer keys and reverse the chain.
//
// Wire format (JSON):
//
//	{
//	  "ciphertext": "<base64 of final-layer bytes>",
//	  "iv":         "<hex, 16 bytes>",
//	  "salt":       "<hex, 32 bytes>",
//	  "algorithm":  "QES-512",
//	  "layers":     2
//	}
type Envelope struct {
	// Ciphertext is the standard base64 encoding of the last layer's output.
	Ciphertext string `json:"ciphertext"`

	// IV is the hex-encoded initialization vector shared by every layer.
	IV string `json:"iv"`

	// Salt is the hex-encoded salt used for every per-layer key derivation.
	Salt string `json:"salt"`

	// Algorithm is a display label only. It is never consulted when decrypting.
	Algorithm string `json:"algorithm"`

	// Layers is the number of chained passes. A pointer keeps an absent field
	// distinguishable from an explicit zero.
	Layers *int `json:"layers,omitempty"`
}

// LayerCount returns the number of layers recorded in the envelope, or zero
// when the field is absent.
func (e Envelope) LayerCount() int {
	if e.Layers == nil {
		return 0
	}
	return *e.Layers
}

// WithLayers returns a copy of e with the layer count set to n.
func (e Envelope) WithLayers(n int) Envelope {
	e.Layers = &n
	return e
}

// EncryptedFile couples an envelope with the file name it is stored under,
// e.g. "report.pdf.encrypted".
type EncryptedFile struct {
	Name     string   `json:"name"`
	Envelope Envelope `json:"envelope"`
}
