package pkg

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const LocalhostIP = "localhost"

// ReadUserIP returns the client IP, preferring proxy headers over the remote address.
// Loopback and docker bridge gateway addresses are reported as "localhost".
func ReadUserIP(r *http.Request) (string, error) {
	raw := r.Header.Get("X-Real-Ip")
	if raw == "" {
		// first entry is the original client
		raw, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		raw = r.RemoteAddr
	}

	host := raw
	if h, _, err := net.SplitHostPort(raw); err == nil {
		host = h
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "", fmt.Errorf("ip addr %s is invalid", raw)
	}
	addr = addr.Unmap()
	if isLocalAddr(addr) {
		return LocalhostIP, nil
	}

	return addr.String(), nil
}

// docker bridge networks hand out 172.x.0.1 as the gateway
func isLocalAddr(addr netip.Addr) bool {
	if addr.IsLoopback() {
		return true
	}
	if !addr.Is4() {
		return false
	}
	b := addr.As4()
	return b[0] == 172 && b[2] == 0 && b[3] == 1
}
