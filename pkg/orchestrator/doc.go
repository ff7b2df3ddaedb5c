// Package orchestrator wires the dump loader, symbol parser, group builder,
// and renderer registry into a single entry point for producing binary size
// reports.
package orchestrator
