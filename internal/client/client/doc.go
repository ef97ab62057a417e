// Package client contains the client-side transports to the ScanKeeper
// list storage.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Load, Save,
//     Clear and Ping over the whole barcode list.
//  2. An HTTP implementation (HTTPClient) speaking GET/POST/DELETE on
//     /api/barcodes with JSON bodies.
//  3. A gRPC implementation (GRPCClient) of the scankeeper.BarcodeList
//     service carrying the same JSON array in protobuf wrapper messages.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized. Malformed list payloads
// wrap common.ErrInvalidPayload.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
