// Package api contains the client-side transport for the vaccination
// registry backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     identity management, session handling, profile lookups, the
//     vaccination-type catalogue and the change feed.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the API key and access token via interceptors,
//     transparently refreshes expired tokens, and maps gRPC status codes
//     to sentinel errors.
//  3. A Subscription handle for the server-streamed change feed with a
//     receive-only event channel and an idempotent Close.
//
// # Error Handling
//
// Failures are returned as *Error values that keep the backend's message
// verbatim while unwrapping to one of the sentinels: ErrUnavailable,
// ErrUnauthorized, ErrNotFound, ErrAlreadyExists. Match with errors.Is.
//
// Concurrency & Contexts
//
// All operations accept context.Context and honor cancellation. The
// GRPCClient itself is intended for a single interactive session; the
// higher-level stores add their own locking.
package api
