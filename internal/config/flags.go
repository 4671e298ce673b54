package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command line.
//
// Flags:
//
//	-a http server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-driver database driver (sqlite3 or pgx)
//	-d database DSN
//	-files-backend envelope storage backend (local or s3)
//	-f envelope directory of the local backend
//	-s3-bucket bucket of the s3 backend
//	-c/-config json file path with configs
//	-layers default layer count
//	-max-layers ceiling on caller-supplied layer counts
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-operation-timeout cipher operation timeout
//	-max-upload-size multipart upload limit in bytes
//	-otel-endpoint OTLP/gRPC collector address, enables tracing
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var driver, databaseDSN string
	var filesBackend, envelopeDir, s3Bucket string
	var jsonConfigPath string
	var layers, maxLayers int
	var requestTimeout, operationTimeout time.Duration
	var maxUploadSize int64
	var otelEndpoint string

	fs := flag.NewFlagSet("qes-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesBackend, "files-backend", "", "Envelope storage backend (local, s3)")
	fs.StringVar(&envelopeDir, "f", "", "Envelope directory")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for envelopes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&layers, "layers", 0, "Default layer count")
	fs.IntVar(&maxLayers, "max-layers", 0, "Max layer count accepted from callers")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Cipher operation timeout")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Max upload size in bytes")
	fs.StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP gRPC collector address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultLayers:    layers,
			OperationTimeout: operationTimeout,
			MaxLayers:        maxLayers,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Files: Files{
				Backend:     filesBackend,
				EnvelopeDir: envelopeDir,
				S3:          S3{Bucket: s3Bucket},
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Telemetry: Telemetry{
			Enabled:  otelEndpoint != "",
			Endpoint: otelEndpoint,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
