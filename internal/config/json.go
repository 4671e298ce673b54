package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version          string   `json:"version"`
		DefaultLayers    int      `json:"default_layers"`
		OperationTimeout Duration `json:"operation_timeout"`
		MaxLayers        int      `json:"max_layers"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend     string `json:"backend"`
			EnvelopeDir string `json:"envelope_dir"`
			S3          struct {
				Bucket    string `json:"bucket"`
				Region    string `json:"region"`
				Endpoint  string `json:"endpoint"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				Prefix    string `json:"prefix"`
			} `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		Concurrency int `json:"concurrency"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		Enabled     bool    `json:"enabled"`
		Endpoint    string  `json:"endpoint"`
		ServiceName string  `json:"service_name"`
		SampleRatio float64 `json:"sample_ratio"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Files.S3
	cfg := &StructuredConfig{
		App: App{
			Version:          jsonCfg.App.Version,
			DefaultLayers:    jsonCfg.App.DefaultLayers,
			OperationTimeout: time.Duration(jsonCfg.App.OperationTimeout),
			MaxLayers:        jsonCfg.App.MaxLayers,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:     jsonCfg.Storage.Files.Backend,
				EnvelopeDir: jsonCfg.Storage.Files.EnvelopeDir,
				S3: S3{
					Bucket:    s3.Bucket,
					Region:    s3.Region,
					Endpoint:  s3.Endpoint,
					AccessKey: s3.AccessKey,
					SecretKey: s3.SecretKey,
					Prefix:    s3.Prefix,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			Concurrency: jsonCfg.Workers.Concurrency,
		},
		Telemetry: Telemetry{
			Enabled:     jsonCfg.Telemetry.Enabled,
			Endpoint:    jsonCfg.Telemetry.Endpoint,
			ServiceName: jsonCfg.Telemetry.ServiceName,
			SampleRatio: jsonCfg.Telemetry.SampleRatio,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
