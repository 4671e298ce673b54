// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the qes command-line application.
//
// Offline commands run the layered cipher in process against local text and
// files; the batch command fans many files out over a worker pool. The remote
// command group talks to a qes-vault server through the HTTP adapter. The CLI
// is non-interactive: passwords come from --password or the QES_PASSWORD
// environment variable.
package client
