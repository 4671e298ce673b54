// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset names accepted at the API and config boundary.
const (
	PresetAES256 = "AES-256"
	PresetQES512 = "QES-512"
	PresetHybrid = "Hybrid"
)

// DefaultLayers is the layer count of the primary demonstration mode (QES-512).
const DefaultLayers = 2

// LabelFor returns the display label stored in an envelope's algorithm field.
func LabelFor(layers int) string {
	switch layers {
	case 1:
		return PresetAES256
	case 2:
		return PresetQES512
	default:
		return fmt.Sprintf("%s-%d", PresetHybrid, layers)
	}
}

// LayersForPreset maps a preset name to its layer count. "Hybrid-N" yields N.
// Matching is case-insensitive.
func LayersForPreset(name string) (int, error) {
	switch {
	case strings.EqualFold(name, PresetAES256):
		return 1, nil
	case strings.EqualFold(name, PresetQES512):
		return 2, nil
	}

	prefix := strings.ToLower(PresetHybrid) + "-"
	if lower := strings.ToLower(name); strings.HasPrefix(lower, prefix) {
		if n, err := strconv.Atoi(lower[len(prefix):]); err == nil && n >= 1 {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown preset %q", ErrInvalidInput, name)
}
