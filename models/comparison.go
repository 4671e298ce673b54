// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistogramBuckets is the number of buckets in [AlgorithmReport.Histogram].
const HistogramBuckets = 16

// ComparisonReport holds side-by-side measurements of the same plaintext
// encrypted with several layer counts.
type ComparisonReport struct {
	PlaintextSize int               `json:"plaintext_size"`
	Results       []AlgorithmReport `json:"results"`
}

// AlgorithmReport describes one encryption run inside a [ComparisonReport].
type AlgorithmReport struct {
	Algorithm       string                `json:"algorithm"`
	Layers          int                   `json:"layers"`
	CiphertextSize  int                   `json:"ciphertext_size"`
	EncryptDuration time.Duration         `json:"encrypt_duration"`
	DecryptDuration time.Duration         `json:"decrypt_duration"`
	Entropy         float64               `json:"entropy"`
	Histogram       [HistogramBuckets]int `json:"histogram"`
}
