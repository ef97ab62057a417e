// Package cli provides the interactive ScanKeeper command-line client.
//
// It wires configuration, the local database, the list storage (HTTP, gRPC
// or local-only) and a session, then runs a REPL. Codes can be entered one
// at a time with "scan <code>" or streamed with "scanmode", which is how a
// keyboard-wedge scanner is used: every decoded code arrives as a line.
//
// The list is refreshed in the background every few seconds, except while a
// search is active or a continuous scan is running.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and renderScreen for details.
package cli
