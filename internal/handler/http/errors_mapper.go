package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qes-vault/internal/app"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/store"
)

// errorStatusMap assigns one status per sentinel. Errors wrapping several
// sentinels (a LayerError wraps ErrDecryption and ErrPadding) only ever
// combine sentinels that share a status, so map order does not matter.
var errorStatusMap = map[error]int{
	crypto.ErrInvalidInput:          http.StatusBadRequest,
	crypto.ErrEnvelopeLayersMissing: http.StatusBadRequest,
	crypto.ErrDecryption:            http.StatusUnprocessableEntity,
	crypto.ErrPadding:               http.StatusUnprocessableEntity,
	crypto.ErrEncoding:              http.StatusUnprocessableEntity,

	ErrUploadTooLarge: http.StatusRequestEntityTooLarge,

	store.ErrEntryNotFound:      http.StatusNotFound,
	store.ErrEnvelopeNotFound:   http.StatusNotFound,
	store.ErrEntryAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response body for err. Checks run from the
// most specific sentinel to the most general one. Validation errors carry
// their own wording; everything else gets a fixed message.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, crypto.ErrEnvelopeLayersMissing):
		return app.MsgLayersMissing
	case errors.Is(err, ErrFileRequired):
		return app.MsgFileRequired
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrInvalidForm):
		return app.MsgInvalidDataProvided
	case errors.Is(err, crypto.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, crypto.ErrDecryption):
		return app.MsgDecryptionFailed
	case errors.Is(err, crypto.ErrEncoding):
		return app.MsgEncodingFailed
	case errors.Is(err, ErrUploadTooLarge):
		return app.MsgUploadTooLarge
	case errors.Is(err, store.ErrEntryNotFound):
		return app.MsgEntryNotFound
	case errors.Is(err, store.ErrEnvelopeNotFound):
		return app.MsgEnvelopeNotFound
	case errors.Is(err, store.ErrEntryAlreadyExists):
		return app.MsgEntryAlreadyExists
	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgOperationTimedOut
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, messageFromError(err), status)
}
