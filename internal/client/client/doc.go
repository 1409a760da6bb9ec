// Package client talks to the UFood REST API on behalf of the signed-in user.
//
// # Overview
//
// The package provides:
//  1. The API contract (Client and the per-area interfaces it embeds).
//  2. HTTPClient, a net/http implementation that reads the bearer token from
//     a session.Session, falls back to the /unsecure endpoints for anonymous
//     restaurant browsing, and maps failures onto the errors below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file that keeps the session between runs.
//
// # Error Handling
//
// ErrUnauthenticated is returned before any request is sent when an
// operation needs a token and the session has none. A non-2xx response is a
// *RemoteError; a request that could not complete is a *TransportError.
// RemoteError matches ErrUnauthorized for 401/403 and TransportError matches
// ErrUnavailable, so callers can use errors.Is.
//
// Whether an operation returns remote and transport failures or replaces
// them with an empty result is decided per operation in Policies. Degraded
// failures are logged and counted; ErrUnauthenticated is never degraded.
package client
