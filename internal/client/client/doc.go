// Package client is the terminal side of the edgesync gRPC service.
//
// GRPCClient wraps the generated edgesync.v1.EdgeSync client and converts
// its messages to the api and models types. It attaches the access token to
// every request via an interceptor and maps gRPC status codes back to the
// sentinel errors in internal/common (plus ErrUnavailable), so callers can
// match them with errors.Is.
package client
