package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/utils"
	"github.com/MKhiriev/go-qes-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter]. The server answers GET /api/version
// with a plain-text body.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// EncryptText implements [ServerAdapter]. It POSTs req to
// POST /api/text/encrypt and decodes the returned envelope.
func (h *httpServerAdapter) EncryptText(ctx context.Context, req models.EncryptionRequest) (models.Envelope, error) {
	var envelope models.Envelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&envelope).
		Post("/api/text/encrypt")
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt text request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Envelope{}, err
	}

	h.logger.Debug().
		Str("func", "*httpServerAdapter.EncryptText").
		Str("algorithm", envelope.Algorithm).
		Int("layers", envelope.LayerCount()).
		Msg("text encrypted remotely")

	return envelope, nil
}

// DecryptText implements [ServerAdapter]. It POSTs req to
// POST /api/text/decrypt and returns the plaintext field of the response.
func (h *httpServerAdapter) DecryptText(ctx context.Context, req models.DecryptionRequest) (string, error) {
	var decrypted models.DecryptionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&decrypted).
		Post("/api/text/decrypt")
	if err != nil {
		return "", fmt.Errorf("decrypt text request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decrypted.Plaintext, nil
}

// Compare implements [ServerAdapter]. It POSTs req to POST /api/compare.
func (h *httpServerAdapter) Compare(ctx context.Context, req models.CompareRequest) (models.ComparisonReport, error) {
	var report models.ComparisonReport

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&report).
		Post("/api/compare")
	if err != nil {
		return models.ComparisonReport{}, fmt.Errorf("compare request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ComparisonReport{}, err
	}

	return report, nil
}
