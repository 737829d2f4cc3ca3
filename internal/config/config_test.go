package config

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	ep, err := cfg.ResolveEndpoint()
	if err != nil {
		t.Fatal(err)
	}
	if ep != "ws://localhost:8000/ws" {
		t.Errorf("default endpoint = %q, want ws://localhost:8000/ws", ep)
	}
	g := cfg.RenderGeometry()
	if g.SafetyFactor != 0.95 || g.Aspect != 0.6 || g.MinFontSize != 4 {
		t.Errorf("geometry = %+v", g)
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
log_level = "debug"

[connection]
origin = "http://cam.local:9000"
handshake_timeout = "3s"

[display]
surface = "tty"
line_height = 1.2

[geometry]
safety_factor = 0.9
`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Connection.HandshakeTimeout.Duration != 3*time.Second {
		t.Errorf("HandshakeTimeout = %v", cfg.Connection.HandshakeTimeout)
	}
	if cfg.Display.Surface != SurfaceTTY || cfg.Display.LineHeight != 1.2 {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if cfg.Geometry.SafetyFactor != 0.9 || cfg.Geometry.Aspect != 0.6 {
		t.Errorf("Geometry = %+v", cfg.Geometry)
	}
	if ep, _ := cfg.ResolveEndpoint(); ep != "ws://cam.local:9000/ws" {
		t.Errorf("endpoint = %q", ep)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Display.Surface != SurfaceAuto {
		t.Errorf("missing file did not yield defaults: %+v", cfg.Display)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[connection]\nendpoint = \"ws://10.0.0.2:8000/ws\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if ep, _ := cfg.ResolveEndpoint(); ep != "ws://10.0.0.2:8000/ws" {
		t.Errorf("endpoint = %q", ep)
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	for _, in := range []string{
		`[connection`,
		"[connection]\nhandshake_timeout = \"soon\"\n",
		"[connection]\nhandshake_timeout = \"-1s\"\n",
	} {
		if _, err := LoadFromReader(strings.NewReader(in)); err == nil {
			t.Errorf("LoadFromReader(%q) succeeded", in)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ASCIIVIEW_ORIGIN":    "https://frames.example",
		"ASCIIVIEW_SURFACE":   "window",
		"ASCIIVIEW_LOG_LEVEL": "warn",
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) string { return env[k] })
	if ep, _ := cfg.ResolveEndpoint(); ep != "wss://frames.example/ws" {
		t.Errorf("endpoint = %q", ep)
	}
	if cfg.Display.Surface != SurfaceWindow || cfg.LogLevel != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}

	cfg.ApplyEnv(func(k string) string {
		if k == "ASCIIVIEW_ENDPOINT" {
			return "ws://override/ws"
		}
		return ""
	})
	if ep, _ := cfg.ResolveEndpoint(); ep != "ws://override/ws" {
		t.Errorf("endpoint override = %q", ep)
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-origin", "example.com:8080", "-surface", "tty", "-log-level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if ep, _ := cfg.ResolveEndpoint(); ep != "ws://example.com:8080/ws" {
		t.Errorf("endpoint = %q", ep)
	}
	if cfg.Display.Surface != SurfaceTTY {
		t.Errorf("surface = %q", cfg.Display.Surface)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"surface", func(c *Config) { c.Display.Surface = "hologram" }},
		{"window", func(c *Config) { c.Display.WindowWidth = 0 }},
		{"line height", func(c *Config) { c.Display.LineHeight = 0 }},
		{"aspect", func(c *Config) { c.Geometry.Aspect = 0 }},
		{"safety", func(c *Config) { c.Geometry.SafetyFactor = -1 }},
		{"floor", func(c *Config) { c.Geometry.MinFontSize = 0 }},
		{"port", func(c *Config) { c.Connection.FallbackPort = 0 }},
		{"origin", func(c *Config) { c.Connection.Origin = "gopher://x" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"read limit", func(c *Config) { c.Connection.MaxMessageBytes = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"250ms", 250 * time.Millisecond, false},
		{"1m30s", 90 * time.Second, false},
		{"-1s", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && d.Duration != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
		}
	}
	b, _ := Duration{250 * time.Millisecond}.MarshalText()
	if string(b) != "250ms" {
		t.Errorf("MarshalText = %q", b)
	}
}

func TestHandshakeTimeoutFlag(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-handshake-timeout", "2s"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Connection.HandshakeTimeout.Duration != 2*time.Second {
		t.Errorf("HandshakeTimeout = %v, want 2s", cfg.Connection.HandshakeTimeout)
	}
}
