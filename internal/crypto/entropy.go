// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"math"

	"github.com/MKhiriev/go-qes-vault/models"
)

// ShannonEntropy returns the entropy of data in bits per byte, between 0 and 8.
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	total := float64(len(data))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// ByteHistogram counts bytes of data bucketed by their high nibble.
func ByteHistogram(data []byte) [models.HistogramBuckets]int {
	var h [models.HistogramBuckets]int
	for _, b := range data {
		h[b>>4]++
	}
	return h
}
