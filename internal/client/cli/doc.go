// Package cli provides the interactive Expensify importer command-line
// client.
//
// It wires configuration, local SQLite storage, the HTTP API client, and an
// interactive REPL around the session and upload controllers. Typical flow:
// restore a saved session on startup, then execute user commands.
//
// Key features:
//   - Register / Login / Logout against the backend
//   - Select a spreadsheet and submit it for expense import
//   - Review past submissions kept in the local history
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
