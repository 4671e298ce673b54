package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DefaultLayers is used when no --layers flag is given.
	DefaultLayers int
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client batch worker settings.
type ClientWorkers struct {
	// Concurrency is the number of files processed in parallel.
	Concurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains remote API address and timeout.
	Adapter ClientAdapter
	// Workers contains batch job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view.
//
// The CLI owns its command line, so only env, the JSON file named by CONFIG
// and defaults are consulted here; cobra flags are applied on top by the
// caller.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultLayers: cfg.App.DefaultLayers,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{Concurrency: cfg.Workers.Concurrency},
	}

	return clientCfg, clientCfg.validate()
}
