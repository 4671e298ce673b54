package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-qes-vault/internal/app"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
)

// toStatus maps a service error onto a gRPC status. Like the HTTP API it
// never names the failing layer.
func toStatus(err error) *status.Status {
	switch {
	case errors.Is(err, crypto.ErrEnvelopeLayersMissing):
		return status.New(codes.InvalidArgument, app.MsgLayersMissing)
	case errors.Is(err, crypto.ErrInvalidInput):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.Is(err, crypto.ErrDecryption):
		return status.New(codes.FailedPrecondition, app.MsgDecryptionFailed)
	case errors.Is(err, crypto.ErrEncoding):
		return status.New(codes.FailedPrecondition, app.MsgEncodingFailed)
	case errors.Is(err, context.DeadlineExceeded):
		return status.New(codes.DeadlineExceeded, app.MsgOperationTimedOut)
	case errors.Is(err, context.Canceled):
		return status.New(codes.Canceled, context.Canceled.Error())
	}
	return status.New(codes.Internal, app.MsgInternalServerError)
}

// statusError logs err and converts it with toStatus.
func statusError(ctx context.Context, funcName string, err error) error {
	st := toStatus(err)

	log := logger.FromContext(ctx)
	event := log.Warn()
	if st.Code() == codes.Internal {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Str("code", st.Code().String()).Msg("request failed")

	return st.Err()
}
