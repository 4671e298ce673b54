// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── NewLogger ──────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("qes-vault-server", &buf)

	l.Info().Int("layers", 2).Msg("text encrypted")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "qes-vault-server", entry["role"])
	assert.Equal(t, "text encrypted", entry["message"])
	assert.EqualValues(t, 2, entry["layers"])
	assert.Contains(t, entry, "time")
	// caller записывается как имя функции, а не file:line
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestNewLogger_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("server", &buf)

	l.Debug().Msg("debug entry")

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "debug entry")
}

func TestNewLogger_Stdout(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
}

// ── Nop ────────────────────────────────────────────────────────────────────

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestNop_WithContextKeepsFallback(t *testing.T) {
	ctx := Nop().WithContext(context.Background())

	require.NotNil(t, FromContext(ctx))
}

// ── ForTrace ───────────────────────────────────────────────────────────────

func TestForTrace_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("server", &buf)

	parent.ForTrace("0190b3c2-trace").Info().Msg("request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "0190b3c2-trace", entry[TraceIDField])
	assert.Equal(t, "server", entry["role"])
}

func TestForTrace_ParentUnchanged(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("server", &buf)

	child := parent.ForTrace("abc")
	assert.NotSame(t, parent, child)

	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), TraceIDField)
}

// ── FromContext / FromRequest ──────────────────────────────────────────────

func TestFromContext_Empty(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLogger("server", &buf).ForTrace("t-1").WithContext(context.Background())

	FromContext(ctx).Warn().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "t-1", entry[TraceIDField])
	assert.Equal(t, "warn", entry["level"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLogger("server", &buf).ForTrace("t-2").WithContext(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/api/text/encrypt", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)[TraceIDField])
}

// ── NewClientLogger ────────────────────────────────────────────────────────

func TestNewClientLogger_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := newClientLogger("cli", false, &buf)

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "role=cli")
}

func TestNewClientLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := newClientLogger("cli", true, &buf)

	l.Debug().Str("file", "a.txt").Msg("encrypting")
	assert.Contains(t, buf.String(), "encrypting")
	assert.Contains(t, buf.String(), "file=a.txt")
}

func TestNewClientLogger_Stderr(t *testing.T) {
	require.NotNil(t, NewClientLogger("cli", false))
}
