// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer gr.Close()
	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		contentType    string
		status         int
		body           string
		wantGzipped    bool
	}{
		{
			name:           "json envelope is compressed",
			acceptEncoding: "gzip",
			contentType:    "application/json",
			status:         http.StatusOK,
			body:           `{"ciphertext":"AAAA","iv":"00","salt":"00","algorithm":"QES-512","layers":2}`,
			wantGzipped:    true,
		},
		{
			name:           "json with charset is compressed",
			acceptEncoding: "deflate, gzip, br",
			contentType:    "application/json; charset=utf-8",
			status:         http.StatusCreated,
			body:           `{"id":"1"}`,
			wantGzipped:    true,
		},
		{
			name:           "plain text error is compressed",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			contentType:    "text/plain; charset=utf-8",
			status:         http.StatusBadRequest,
			body:           "invalid input: password is required\n",
			wantGzipped:    true,
		},
		{
			name:           "binary download is passed through",
			acceptEncoding: "gzip",
			contentType:    "application/octet-stream",
			status:         http.StatusOK,
			body:           "\x00\x01\x02\xff",
			wantGzipped:    false,
		},
		{
			name:           "client without gzip",
			acceptEncoding: "",
			contentType:    "application/json",
			status:         http.StatusOK,
			body:           `{"plaintext":"hello"}`,
			wantGzipped:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestGZip_ImplicitHeaderSniffsContentType(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1.2.3"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "1.2.3", gunzip(t, rr.Body))
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/passwords/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat(`{"name":"github","algorithm":"QES-512"},`, 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/passwords", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10, "compressed size should be much smaller than original")
}

// ---- Request decompression ----

func TestGZip_DecompressesRequestBody(t *testing.T) {
	payload := []byte(`{"plaintext":"hello","password":"pw","layers":2}`)

	for _, encoding := range []string{"gzip", "gzip, deflate"} {
		t.Run(encoding, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, string(payload), string(body))
				assert.Empty(t, r.Header.Get("Content-Encoding"), "Content-Encoding should be removed")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/text/encrypt", gzipBytes(t, payload))
			req.Header.Set("Content-Encoding", encoding)
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/text/encrypt", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

// ---- Pool reuse ----

func TestGZip_PoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(body)
	})
	middleware := withGZip(next)

	for i := 0; i < 5; i++ {
		payload := []byte(strings.Repeat("layer ", i+1))
		req := httptest.NewRequest(http.MethodPost, "/test", gzipBytes(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(payload), gunzip(t, rr.Body), "request %d: wrong body", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[]}`))
	})
	middleware := withGZip(next)

	const numGoroutines = 50
	done := make(chan string, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			gr, err := gzip.NewReader(rr.Body)
			if err != nil {
				done <- ""
				return
			}
			data, _ := io.ReadAll(gr)
			_ = gr.Close()
			done <- string(data)
		}()
	}

	for i := 0; i < numGoroutines; i++ {
		assert.Equal(t, `{"files":[]}`, <-done)
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closeCalled = true },
	}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled, "OnClose should be called")

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close(),
		"Close should not fail when OnClose is nil")
}

func TestIsCompressible(t *testing.T) {
	assert.True(t, isCompressible("application/json"))
	assert.True(t, isCompressible("text/plain; charset=utf-8"))
	assert.False(t, isCompressible("application/octet-stream"))
	assert.False(t, isCompressible(""))
}
