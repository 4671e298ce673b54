// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// qes-vault transports and the CLI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, gRPC statuses or CLI error output to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the API. None of them ever carries a password, a key or
// recovered plaintext.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDecryptionFailed is returned when any layer of a decryption fails.
	// The failing layer is deliberately not named.
	MsgDecryptionFailed = "decryption failed: check the password and the layer count"

	// MsgEncodingFailed is returned when decryption succeeded but the
	// recovered bytes are not valid text or base64, which almost always
	// means a wrong password slipped past the padding check.
	MsgEncodingFailed = "decrypted data is not valid: check the password"

	// MsgLayersMissing is returned for envelopes that do not record their
	// layer count when the caller did not supply one either.
	MsgLayersMissing = "envelope has no layer count: supply assume_layers"

	// MsgEntryNotFound is returned when no password entry has the requested id.
	MsgEntryNotFound = "password entry not found"

	// MsgEntryAlreadyExists is returned when a password entry with the same
	// name is already stored.
	MsgEntryAlreadyExists = "password entry already exists"

	// MsgEnvelopeNotFound is returned when no stored envelope has the
	// requested file name.
	MsgEnvelopeNotFound = "envelope not found"

	// MsgFileRequired is returned when a multipart upload has no "file" part.
	MsgFileRequired = "multipart field \"file\" is required"

	// MsgUploadTooLarge is returned when an upload exceeds the configured
	// size limit.
	MsgUploadTooLarge = "uploaded file is too large"

	// MsgOperationTimedOut is returned when a request exceeded its deadline.
	MsgOperationTimedOut = "operation timed out"
)
