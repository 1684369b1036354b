// Package main hosts the bibsync CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the reconciliation, deduplication,
// and merge workflows along with the run-history ledger and configuration
// scaffolding. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring; the heavy lifting lives in the internal packages.
package main
