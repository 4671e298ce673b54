package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-qes-vault/internal/app"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/store"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: crypto.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "validator error", err: validators.ErrInvalidSalt, want: http.StatusBadRequest},
		{name: "layers missing", err: crypto.ErrEnvelopeLayersMissing, want: http.StatusBadRequest},
		{name: "invalid json", err: ErrInvalidJSON, want: http.StatusBadRequest},
		{name: "file required", err: ErrFileRequired, want: http.StatusBadRequest},
		{name: "layer error", err: &crypto.LayerError{Layer: 0, Err: crypto.ErrPadding}, want: http.StatusUnprocessableEntity},
		{name: "encoding", err: fmt.Errorf("%w: bad utf-8", crypto.ErrEncoding), want: http.StatusUnprocessableEntity},
		{name: "upload too large", err: ErrUploadTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "entry not found", err: store.ErrEntryNotFound, want: http.StatusNotFound},
		{name: "envelope not found", err: fmt.Errorf("get: %w", store.ErrEnvelopeNotFound), want: http.StatusNotFound},
		{name: "already exists", err: store.ErrEntryAlreadyExists, want: http.StatusConflict},
		{name: "sql", err: store.ErrScanningRows, want: http.StatusInternalServerError},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "layers missing wins over invalid input", err: crypto.ErrEnvelopeLayersMissing, want: app.MsgLayersMissing},
		{name: "validator keeps its wording", err: validators.ErrEmptyPassword, want: validators.ErrEmptyPassword.Error()},
		{name: "parser details hidden", err: fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), want: app.MsgInvalidDataProvided},
		{name: "file required", err: ErrFileRequired, want: app.MsgFileRequired},
		{name: "layer not disclosed", err: &crypto.LayerError{Layer: 3, Err: crypto.ErrPadding}, want: app.MsgDecryptionFailed},
		{name: "encoding", err: crypto.ErrEncoding, want: app.MsgEncodingFailed},
		{name: "too large", err: ErrUploadTooLarge, want: app.MsgUploadTooLarge},
		{name: "entry not found", err: store.ErrEntryNotFound, want: app.MsgEntryNotFound},
		{name: "envelope not found", err: store.ErrEnvelopeNotFound, want: app.MsgEnvelopeNotFound},
		{name: "already exists", err: store.ErrEntryAlreadyExists, want: app.MsgEntryAlreadyExists},
		{name: "deadline", err: context.DeadlineExceeded, want: app.MsgOperationTimedOut},
		{name: "internal", err: store.ErrExecutingQuery, want: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err))
		})
	}
}

func TestWriteError_LogsLevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{name: "client error is a warning", err: validators.ErrEmptyPassword, wantLevel: `"level":"warn"`},
		{name: "server error is an error", err: errors.New("boom"), wantLevel: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			req := httptest.NewRequest(http.MethodPost, "/api/text/encrypt", nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			writeError(rec, req, "*Handler.encryptText", tt.err)

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `"func":"*Handler.encryptText"`)
		})
	}
}
