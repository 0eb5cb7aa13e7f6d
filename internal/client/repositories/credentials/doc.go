// Package credentials persists the client's session secrets.
//
// Three implementations of Repository are provided:
//
//   - SQLiteRepository keeps values in a local SQLite file (pure-Go driver,
//     schema applied with embedded goose migrations).
//   - MemoryRepository keeps values in process memory only.
//   - SealedRepository wraps another Repository and encrypts values at rest
//     with a key derived from a passphrase.
//
// Callers treat any read failure as "no session"; the repositories return
// errors wrapped with the key they were working on.
package credentials
