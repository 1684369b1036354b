// Package history records compare and update runs in a local SQLite
// ledger so past reconciliation outcomes can be reviewed.
package history
