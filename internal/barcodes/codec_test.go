package barcodes

import (
	"testing"

	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeList(t *testing.T) {
	data, err := EncodeList(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	data, err = EncodeList([]Record{{Code: "FM1", Timestamp: "1/2/2026, 3:04:05 PM"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"code":"FM1","timestamp":"1/2/2026, 3:04:05 PM"}]`, string(data))
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Record
		wantErr bool
	}{
		{name: "empty body", in: "", want: []Record{}},
		{name: "empty array", in: " [] ", want: []Record{}},
		{name: "records", in: `[{"code":"VL9","timestamp":"t1"},{"code":"123","timestamp":"t2"}]`,
			want: []Record{{Code: "VL9", Timestamp: "t1"}, {Code: "123", Timestamp: "t2"}}},
		{name: "extra fields tolerated", in: `[{"code":"VL9","timestamp":"t1","x":1}]`,
			want: []Record{{Code: "VL9", Timestamp: "t1"}}},
		{name: "object", in: `{"code":"VL9"}`, wantErr: true},
		{name: "null", in: `null`, wantErr: true},
		{name: "text", in: `hello`, wantErr: true},
		{name: "broken array", in: `[{"code":`, wantErr: true},
		{name: "array of strings", in: `["a","b"]`, wantErr: true},
		{name: "missing code", in: `[{"timestamp":"t"}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeList([]byte(tt.in))
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
