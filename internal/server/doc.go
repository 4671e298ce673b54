// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
// The HTTP server is instrumented with OpenTelemetry; [InitTracer] installs
// the exporter that receives its spans.
package server
