package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
)

// traceIDKey is the metadata key carrying the trace id, the gRPC
// counterpart of the X-Trace-ID header.
const traceIDKey = "x-trace-id"

// UnaryInterceptors returns the interceptor chain for the gRPC server:
// trace id first, then access logging, then the per-call deadline.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		h.withTimeout,
	}
}

func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	ctx = h.logger.ForTrace(traceID).WithContext(utils.WithTraceID(ctx, traceID))

	// fails only outside a real server stream
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(ctx, req)
}

// withLogging writes one access log line per call. Messages are never
// logged: they carry passwords.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// withTimeout bounds the call by requestTimeout. A reply produced after the
// deadline is dropped in favour of DeadlineExceeded.
func (h *Handler) withTimeout(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.requestTimeout <= 0 {
		return handler(ctx, req)
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := handler(ctx, req)
	if err == nil && ctx.Err() != nil {
		return nil, statusError(ctx, info.FullMethod, ctx.Err())
	}
	return resp, err
}
