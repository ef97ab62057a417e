// Package metadata persists client key-value state (the restored view: tab,
// search term, drill-down group) in the SQLite "metadata" table.
package metadata
