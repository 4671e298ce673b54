// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MaxLayers < 1 {
		return fmt.Errorf("%w: max layers %d", ErrInvalidAppConfigs, cfg.App.MaxLayers)
	}
	if cfg.App.DefaultLayers < 1 || cfg.App.DefaultLayers > cfg.App.MaxLayers {
		return fmt.Errorf("%w: default layers %d, max %d", ErrInvalidAppConfigs, cfg.App.DefaultLayers, cfg.App.MaxLayers)
	}
	if cfg.App.OperationTimeout < 0 {
		return fmt.Errorf("%w: negative operation timeout", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case BackendLocal:
		if cfg.Storage.Files.EnvelopeDir == "" {
			return fmt.Errorf("%w: empty envelope dir", ErrInvalidStorageConfigs)
		}
	case BackendS3:
		if cfg.Storage.Files.S3.Bucket == "" {
			return fmt.Errorf("%w: empty s3 bucket", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	if cfg.Workers.Concurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return cfg.Telemetry.validate()
}

func (t Telemetry) validate() error {
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		return fmt.Errorf("%w: sample ratio %v", ErrInvalidTelemetryConfigs, t.SampleRatio)
	}
	if t.Enabled && t.Endpoint == "" {
		return fmt.Errorf("%w: enabled without endpoint", ErrInvalidTelemetryConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.DefaultLayers < 1 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.Concurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
