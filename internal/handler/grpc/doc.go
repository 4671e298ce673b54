// Package grpc exposes the layered cipher over gRPC.
//
// The service qes.v1.CipherService has two unary methods, Encrypt and
// Decrypt, whose messages are the same JSON documents the HTTP API accepts.
// There are no generated stubs: the service descriptor is declared by hand
// and messages travel with the "json" codec registered by this package.
// Clients select it with the content subtype "json" (see [NewCipherClient]).
package grpc
