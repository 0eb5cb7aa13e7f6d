// Package cli provides the interactive WillBank command-line client.
//
// It wires configuration, the local credential store, the authenticated
// transport and the service clients into a REPL. A background watcher pings
// the client service and switches between online and offline mode.
//
// Commands cover registration and login, profile and password, accounts
// and balances, transaction history, transfers, deposits and withdrawals,
// notifications, the dashboard and statements, and service status.
//
// When a token refresh is rejected the transport purges the session and the
// console prints a notice; protected commands then ask the user to log in
// again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
