// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func errorServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestNewHTTPServerAdapter_Timeout(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 3 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	h := a.(*httpServerAdapter)
	assert.Equal(t, "http://localhost:8080", h.client.BaseURL)
	assert.Equal(t, 3*time.Second, h.client.GetClient().Timeout)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestVersion_NotFound(t *testing.T) {
	srv := errorServer(http.StatusNotFound, "404 page not found")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── EncryptText ─────────────────────────────────────────────────────────────

func TestEncryptText_Success(t *testing.T) {
	layers := 3
	want := models.Envelope{
		Ciphertext: "Y2lwaGVy",
		IV:         "00112233445566778899aabbccddeeff",
		Salt:       "aa",
		Algorithm:  "Hybrid-3",
		Layers:     &layers,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/text/encrypt", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.EncryptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.EncryptionRequest{Plaintext: "hello", Password: "pw", Layers: 3}, req)

		writeJSON(t, w, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).EncryptText(context.Background(),
		models.EncryptionRequest{Plaintext: "hello", Password: "pw", Layers: 3})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncryptText_BadRequest(t *testing.T) {
	srv := errorServer(http.StatusBadRequest, "password must not be empty")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).EncryptText(context.Background(), models.EncryptionRequest{Plaintext: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "password must not be empty")
}

// ── DecryptText ─────────────────────────────────────────────────────────────

func TestDecryptText_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/text/decrypt", r.URL.Path)

		var req models.DecryptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pw", req.Password)
		assert.Equal(t, 2, req.AssumeLayers)
		assert.Nil(t, req.Envelope.Layers)

		writeJSON(t, w, models.DecryptionResponse{Plaintext: "hello"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).DecryptText(context.Background(), models.DecryptionRequest{
		Envelope:     models.Envelope{Ciphertext: "Y2lwaGVy"},
		Password:     "pw",
		AssumeLayers: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestDecryptText_WrongPassword(t *testing.T) {
	srv := errorServer(http.StatusUnprocessableEntity, "decryption failed: check the password and the layer count")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DecryptText(context.Background(), models.DecryptionRequest{Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.NotContains(t, err.Error(), "bad")
}

// ── Compare ─────────────────────────────────────────────────────────────────

func TestCompare_Success(t *testing.T) {
	want := models.ComparisonReport{
		PlaintextSize: 5,
		Results: []models.AlgorithmReport{
			{Algorithm: "AES-256", Layers: 1, CiphertextSize: 16},
			{Algorithm: "QES-512", Layers: 2, CiphertextSize: 32},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/compare", r.URL.Path)
		writeJSON(t, w, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Compare(context.Background(),
		models.CompareRequest{Plaintext: "hello", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompare_Timeout(t *testing.T) {
	srv := errorServer(http.StatusGatewayTimeout, "operation timed out")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Compare(context.Background(), models.CompareRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGatewayTimeout)
}

func TestCompare_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.ComparisonReport{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Compare(ctx, models.CompareRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusRequestEntityTooLarge, ErrPayloadTooLarge},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusGatewayTimeout, ErrGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := errorServer(tt.status, "boom")
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := errorServer(http.StatusTeapot, "")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.EqualError(t, err, "http 418: I'm a teapot")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"https kept", "https://vault.example.com", "https://vault.example.com", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
