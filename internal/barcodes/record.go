package barcodes

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TimestampLayout renders insertion times the way the shared list has always
// stored them, e.g. "10/15/2026, 3:04:05 PM".
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// MinCodeLength is the shortest payload a scan adapter may emit.
const MinCodeLength = 3

// Record is one scanned barcode. Timestamp is set once at insertion.
type Record struct {
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

// Valid reports whether a decoded payload passes the adapter filter:
// at least MinCodeLength characters and no literal '.'.
func Valid(code string) bool {
	return utf8.RuneCountInString(code) >= MinCodeLength && !strings.Contains(code, ".")
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
