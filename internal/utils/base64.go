// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Base64ChunkSize is the number of raw bytes encoded per step by
// [EncodeBase64Chunked]. It is a multiple of 3, so concatenated chunks carry
// no inner padding and the output equals a single-shot encoding.
const Base64ChunkSize = 8190

// ErrBase64 is returned when file content cannot be decoded from base64.
var ErrBase64 = errors.New("invalid base64 content")

// EncodeBase64Chunked returns the standard base64 encoding of data, produced
// chunk by chunk so large files never need one contiguous encode buffer
// beyond the result itself.
func EncodeBase64Chunked(data []byte) string {
	var sb strings.Builder
	sb.Grow(base64.StdEncoding.EncodedLen(len(data)))

	chunk := make([]byte, base64.StdEncoding.EncodedLen(Base64ChunkSize))
	for start := 0; start < len(data); start += Base64ChunkSize {
		end := min(start+Base64ChunkSize, len(data))
		n := base64.StdEncoding.EncodedLen(end - start)
		base64.StdEncoding.Encode(chunk[:n], data[start:end])
		sb.Write(chunk[:n])
	}
	return sb.String()
}

// DecodeBase64Chunked reverses [EncodeBase64Chunked]. It streams through a
// base64 decoder and fails with [ErrBase64] on malformed input.
func DecodeBase64Chunked(encoded []byte) ([]byte, error) {
	out := make([]byte, 0, base64.StdEncoding.DecodedLen(len(encoded)))
	buf := bytes.NewBuffer(out)

	dec := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(encoded))
	chunk := make([]byte, Base64ChunkSize)
	if _, err := io.CopyBuffer(buf, dec, chunk); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64, err)
	}
	return buf.Bytes(), nil
}
