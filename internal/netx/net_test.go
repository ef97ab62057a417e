package netx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostFromAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.0.0.7:51234", "10.0.0.7"},
		{"[::1]:8080", "::1"},
		{"10.0.0.7", "10.0.0.7"},
		{"[::1]", "::1"},
		{" 192.168.1.1 ", "192.168.1.1"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HostFromAddr(tt.in))
		})
	}
}

func TestClientHost(t *testing.T) {
	t.Run("remote address", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/barcodes", nil)
		r.RemoteAddr = "172.16.0.4:40000"
		assert.Equal(t, "172.16.0.4", ClientHost(r))
	})

	t.Run("forwarded for wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/barcodes", nil)
		r.RemoteAddr = "10.0.0.1:40000"
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		assert.Equal(t, "203.0.113.9", ClientHost(r))
	})

	t.Run("empty forwarded hop falls back", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/barcodes", nil)
		r.RemoteAddr = "10.0.0.1:40000"
		r.Header.Set("X-Forwarded-For", " , 10.0.0.2")
		assert.Equal(t, "10.0.0.1", ClientHost(r))
	})
}
