package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/models"
)

const tracerName = "github.com/MKhiriev/go-qes-vault/internal/service"

// CipherTracingService decorates a CipherService with an OpenTelemetry span
// per call, an optional per-call deadline and a structured log line. Only
// sizes and layer counts are recorded; passwords and plaintext never are.
type CipherTracingService struct {
	inner   CipherService
	timeout time.Duration
	tracer  trace.Tracer

	logger *logger.Logger
}

// NewCipherTracingService uses the global tracer provider, which is a no-op
// until the server installs an exporter.
func NewCipherTracingService(cfg config.App, logger *logger.Logger) CipherServiceWrapper {
	return &CipherTracingService{
		timeout: cfg.OperationTimeout,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

func (t *CipherTracingService) Wrap(inner CipherService) CipherService {
	t.inner = inner
	return t
}

func (t *CipherTracingService) EncryptText(ctx context.Context, request models.EncryptionRequest) (models.Envelope, error) {
	ctx, finish := t.start(ctx, "EncryptText",
		attribute.Int("qes.layers", request.Layers),
		attribute.Int("qes.input_size", len(request.Plaintext)),
	)

	envelope, err := t.inner.EncryptText(ctx, request)
	if err = finish(err, attribute.Int("qes.output_layers", envelope.LayerCount())); err != nil {
		return models.Envelope{}, err
	}
	return envelope, nil
}

func (t *CipherTracingService) DecryptText(ctx context.Context, request models.DecryptionRequest) (string, error) {
	ctx, finish := t.start(ctx, "DecryptText",
		attribute.Int("qes.layers", request.Envelope.LayerCount()),
		attribute.Int("qes.input_size", len(request.Envelope.Ciphertext)),
	)

	plaintext, err := t.inner.DecryptText(ctx, request)
	if err = finish(err, attribute.Int("qes.output_size", len(plaintext))); err != nil {
		return "", err
	}
	return plaintext, nil
}

func (t *CipherTracingService) EncryptFile(ctx context.Context, request models.FileEncryptionRequest) (models.EncryptedFile, error) {
	ctx, finish := t.start(ctx, "EncryptFile",
		attribute.Int("qes.layers", request.Layers),
		attribute.Int("qes.input_size", len(request.Data)),
	)

	file, err := t.inner.EncryptFile(ctx, request)
	if err = finish(err, attribute.Int("qes.output_layers", file.Envelope.LayerCount())); err != nil {
		return models.EncryptedFile{}, err
	}
	return file, nil
}

func (t *CipherTracingService) DecryptFile(ctx context.Context, request models.FileDecryptionRequest) (models.DecryptedFile, error) {
	ctx, finish := t.start(ctx, "DecryptFile",
		attribute.Int("qes.input_size", len(request.Data)),
	)

	file, err := t.inner.DecryptFile(ctx, request)
	if err = finish(err, attribute.Int("qes.output_size", len(file.Data))); err != nil {
		return models.DecryptedFile{}, err
	}
	return file, nil
}

func (t *CipherTracingService) Compare(ctx context.Context, request models.CompareRequest) (models.ComparisonReport, error) {
	ctx, finish := t.start(ctx, "Compare",
		attribute.IntSlice("qes.layers", request.Layers),
		attribute.Int("qes.input_size", len(request.Plaintext)),
	)

	report, err := t.inner.Compare(ctx, request)
	if err = finish(err, attribute.Int("qes.results", len(report.Results))); err != nil {
		return models.ComparisonReport{}, err
	}
	return report, nil
}

// start opens the span and applies the deadline. The returned finish must
// be called exactly once with the operation's error; it returns the error the
// caller reports. A result produced after the deadline is discarded and
// reported as the context's error.
func (t *CipherTracingService) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error, ...attribute.KeyValue) error) {
	cancel := context.CancelFunc(func() {})
	if t.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
	}

	ctx, span := t.tracer.Start(ctx, "CipherService."+op, trace.WithAttributes(attrs...))
	began := time.Now()

	return ctx, func(err error, resultAttrs ...attribute.KeyValue) error {
		defer cancel()
		defer span.End()

		if err == nil {
			err = ctx.Err()
		}

		elapsed := time.Since(began)
		log := logger.FromContext(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Warn().Err(err).
				Str("func", "CipherService."+op).
				Dur("elapsed", elapsed).
				Msg("cipher operation failed")
			return err
		}

		span.SetAttributes(resultAttrs...)
		span.SetStatus(codes.Ok, "")
		log.Debug().
			Str("func", "CipherService."+op).
			Dur("elapsed", elapsed).
			Msg("cipher operation finished")
		return nil
	}
}
