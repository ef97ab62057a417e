// Package barcodes holds the record model shared by the ScanKeeper client
// and server: the carrier classifier, the ordered de-duplicated record store,
// and the read-only grouped and search views derived from it.
//
// # Identity
//
// Codes are unique within a store, so a code doubles as a stable record
// identifier. Views additionally report each record's original index (its
// position in the unfiltered store) so positional deletes issued from a
// filtered view hit the intended record.
package barcodes
