// Package common contains shared constants and sentinel errors used across
// ScanKeeper components.
package common

// ListPath is the HTTP route of the shared barcode list.
const ListPath = "/api/barcodes"

// GlobalListKey is the blob key used when every caller shares one list.
const GlobalListKey = "global-barcode-list"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
