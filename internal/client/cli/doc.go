// Package cli provides the interactive UFood command-line client.
//
// It wires configuration, local storage, the API client and the auth
// service, then runs a REPL. A stored session is restored on start, so a
// user who logged in earlier does not need to log in again until the token
// expires.
//
// Key features:
//   - Register / Login / Logout / whoami
//   - Browse restaurants and similar restaurants
//   - Favorite lists: create, rename, delete, select, add and remove restaurants
//   - Visits: list and record
//   - Users: search, show, follow and unfollow
//   - stats: API call counters collected during the session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
