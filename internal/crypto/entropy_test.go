// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShannonEntropy(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	assert.Equal(t, 0.0, ShannonEntropy(nil))
	assert.Equal(t, 0.0, ShannonEntropy(bytes.Repeat([]byte{7}, 100)))
	assert.InDelta(t, 1.0, ShannonEntropy([]byte{0, 1, 0, 1}), 1e-9)
	assert.InDelta(t, 8.0, ShannonEntropy(all), 1e-9)
}

func TestShannonEntropy_CiphertextIsHigh(t *testing.T) {
	c := newFastCipher()

	env, err := c.Encrypt(bytes.Repeat([]byte{'a'}, 8192), "pw", 2)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	require.NoError(t, err)
	assert.Greater(t, ShannonEntropy(raw), 7.5)
}

func TestByteHistogram(t *testing.T) {
	h := ByteHistogram([]byte{0x00, 0x0f, 0x10, 0xff, 0xf0})

	assert.Equal(t, 2, h[0])
	assert.Equal(t, 1, h[1])
	assert.Equal(t, 2, h[15])

	sum := 0
	for _, v := range h {
		sum += v
	}
	assert.Equal(t, 5, sum)
}
