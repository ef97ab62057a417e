// Package netx holds small networking helpers shared by the HTTP and gRPC
// endpoints.
package netx

import (
	"net"
	"net/http"
	"strings"
)

// HostFromAddr strips the port from a "host:port" address. Addresses without
// a port are returned trimmed but otherwise unchanged.
func HostFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.Trim(addr, "[]")
}

// ClientHost identifies the caller of r: the first X-Forwarded-For hop when
// the request came through a proxy, otherwise the remote address.
func ClientHost(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if h := HostFromAddr(first); h != "" {
			return h
		}
	}
	return HostFromAddr(r.RemoteAddr)
}
