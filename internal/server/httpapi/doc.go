// Package httpapi serves the shared barcode list over HTTP.
//
// Routes:
//
//	GET    /api/barcodes   stored JSON array, or [] when empty
//	POST   /api/barcodes   replace the list, {"success":true}
//	DELETE /api/barcodes   clear the list, {"success":true}
//	GET    /healthz        liveness
//	GET    /metrics        Prometheus exposition
//
// Any other method on /api/barcodes answers 405 "Method not allowed".
package httpapi
