package barcodes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/scankeeper/internal/common"
)

// EncodeList serializes records as the JSON array exchanged with remote
// storage. A nil slice encodes as "[]".
func EncodeList(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return data, nil
}

// DecodeList parses a JSON array of {code, timestamp} objects. Empty input
// decodes to an empty list; anything that is not an array fails with
// common.ErrInvalidPayload.
func DecodeList(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []Record{}, nil
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", common.ErrInvalidPayload)
	}

	var records []Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	for i, r := range records {
		if r.Code == "" {
			return nil, fmt.Errorf("%w: record %d has no code", common.ErrInvalidPayload, i)
		}
	}
	return records, nil
}
