// Package records keeps the barcode list in the local SQLite database.
//
// It backs the local-only storage mode: SQLiteRepository offers the same
// Load/Save/Clear contract as the remote transports, so the sync service
// cannot tell the difference. Positions are stored explicitly and Load
// returns records newest-first, exactly as they were saved.
package records
