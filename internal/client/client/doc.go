// Package client talks to the userdir AccountService on behalf of the CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, Logout, Profile, Users, User and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, keeps the session token returned by Login, attaches it to
//     every call via an interceptor, and maps gRPC status codes to sentinel
//     errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrAlreadyExists,
// ErrInvalidArgument.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. Every call is bounded by the
// configured request timeout in addition to the caller's context.
package client
