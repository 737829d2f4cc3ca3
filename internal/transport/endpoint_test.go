package transport

import "testing"

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		fb     Fallback
		want   string
	}{
		{"no origin", "", DefaultFallback(), "ws://localhost:8000/ws"},
		{"blank origin", "   ", DefaultFallback(), "ws://localhost:8000/ws"},
		{"file origin", "file:///home/me/index.html", DefaultFallback(), "ws://localhost:8000/ws"},
		{"custom fallback", "", Fallback{Host: "10.0.0.5", Port: 9000, Path: "/stream"}, "ws://10.0.0.5:9000/stream"},
		{"fallback defaults", "", Fallback{Port: 8000}, "ws://localhost:8000/ws"},
		{"ipv6 fallback", "", Fallback{Host: "::1", Port: 8000, Path: "/ws"}, "ws://[::1]:8000/ws"},
		{"http origin", "http://example.com:8000", DefaultFallback(), "ws://example.com:8000/ws"},
		{"http origin with path", "http://example.com/client/index.html", DefaultFallback(), "ws://example.com/ws"},
		{"https origin", "https://example.com", DefaultFallback(), "wss://example.com/ws"},
		{"bare host", "cam.local:8000", DefaultFallback(), "ws://cam.local:8000/ws"},
		{"path without slash", "example.com", Fallback{Host: "localhost", Port: 8000, Path: "live"}, "ws://example.com/live"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEndpoint(tt.origin, tt.fb)
			if err != nil {
				t.Fatalf("ResolveEndpoint: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveEndpoint(%q) = %q, want %q", tt.origin, got, tt.want)
			}
		})
	}
}

func TestResolveEndpointErrors(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		fb     Fallback
	}{
		{"bad port", "", Fallback{Host: "localhost", Port: 0}},
		{"port too large", "", Fallback{Host: "localhost", Port: 70000}},
		{"unsupported scheme", "ftp://example.com", DefaultFallback()},
		{"no host", "http://", DefaultFallback()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := ResolveEndpoint(tt.origin, tt.fb); err == nil {
				t.Errorf("ResolveEndpoint(%q) = %q, want error", tt.origin, got)
			}
		})
	}
}
