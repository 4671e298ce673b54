package config

import "time"

// Built-in defaults applied after every other source.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	BackendLocal = "local"
	BackendS3    = "s3"

	// DefaultMaxUploadSize bounds multipart uploads when nothing else is set.
	DefaultMaxUploadSize = 32 << 20

	defaultLayers           = 2
	defaultMaxLayers        = 16
	defaultDriver           = DriverSQLite
	defaultDSN              = "file:qes-vault.db?_foreign_keys=on"
	defaultBackend          = BackendLocal
	defaultEnvelopeDir      = "envelopes"
	defaultRequestTimeout   = 30 * time.Second
	defaultMaxUploadSize    = DefaultMaxUploadSize
	defaultAdapterTimeout   = 30 * time.Second
	defaultAdapterAddress   = "http://localhost:8080"
	defaultConcurrency      = 4
	defaultServiceName      = "qes-vault"
	defaultSampleRatio      = 1.0
	defaultS3Region         = "us-east-1"
	defaultOperationTimeout = 0
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultLayers:    defaultLayers,
			OperationTimeout: defaultOperationTimeout,
			MaxLayers:        defaultMaxLayers,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDriver,
				DSN:    defaultDSN,
			},
			Files: Files{
				Backend:     defaultBackend,
				EnvelopeDir: defaultEnvelopeDir,
				S3:          S3{Region: defaultS3Region},
			},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			Concurrency: defaultConcurrency,
		},
		Telemetry: Telemetry{
			ServiceName: defaultServiceName,
			SampleRatio: defaultSampleRatio,
		},
	}
}
