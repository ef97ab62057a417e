// Package services holds the client's long-lived helpers: SyncService, the
// write queue and pull path to list storage, and ViewStateCache, which
// remembers the active tab, search term and drill-down group between runs.
package services
