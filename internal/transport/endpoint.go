package transport

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Fallback is the endpoint used when the client has no serving origin.
type Fallback struct {
	Host string
	Port int
	Path string
}

// DefaultFallback returns ws://localhost:8000/ws.
func DefaultFallback() Fallback {
	return Fallback{Host: "localhost", Port: 8000, Path: "/ws"}
}

// ResolveEndpoint picks the WebSocket URL to dial. An origin such as
// "http://example.com:8000" or "example.com:8000" maps to the same host's
// /ws path; https origins use wss. An empty origin, or a file: origin, has
// no host to derive from and uses fb.
func ResolveEndpoint(origin string, fb Fallback) (string, error) {
	path := fb.Path
	if path == "" {
		path = "/ws"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	origin = strings.TrimSpace(origin)
	if origin == "" || strings.HasPrefix(origin, "file:") {
		host := fb.Host
		if host == "" {
			host = "localhost"
		}
		if fb.Port <= 0 || fb.Port > 65535 {
			return "", fmt.Errorf("resolve endpoint: invalid fallback port %d", fb.Port)
		}
		u := url.URL{Scheme: "ws", Host: net.JoinHostPort(host, strconv.Itoa(fb.Port)), Path: path}
		return u.String(), nil
	}

	if !strings.Contains(origin, "://") {
		origin = "http://" + origin
	}
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("resolve endpoint: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("resolve endpoint: origin %q has no host", origin)
	}

	scheme := "ws"
	switch u.Scheme {
	case "http", "ws":
	case "https", "wss":
		scheme = "wss"
	default:
		return "", fmt.Errorf("resolve endpoint: unsupported origin scheme %q", u.Scheme)
	}
	return (&url.URL{Scheme: scheme, Host: u.Host, Path: path}).String(), nil
}
