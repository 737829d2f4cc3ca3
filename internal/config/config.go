package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/junsooki/asciiview/internal/render"
	"github.com/junsooki/asciiview/internal/transport"
)

// Surface names.
const (
	SurfaceAuto   = "auto"
	SurfaceWindow = "window"
	SurfaceTTY    = "tty"
)

// Config holds all runtime configuration.
type Config struct {
	Connection ConnectionConfig `toml:"connection"`
	Display    DisplayConfig    `toml:"display"`
	Geometry   GeometryConfig   `toml:"geometry"`
	LogLevel   string           `toml:"log_level"`
	// LogFile receives logs in addition to stderr. With the tty surface it
	// is the only log destination.
	LogFile string `toml:"log_file"`
}

// ConnectionConfig selects and bounds the frame source connection.
type ConnectionConfig struct {
	// Origin is the address the client was served from. Empty means none,
	// and the fallback endpoint is used.
	Origin string `toml:"origin"`
	// Endpoint, when set, is dialed as-is.
	Endpoint         string   `toml:"endpoint"`
	FallbackHost     string   `toml:"fallback_host"`
	FallbackPort     int      `toml:"fallback_port"`
	Path             string   `toml:"path"`
	HandshakeTimeout Duration `toml:"handshake_timeout"`
	MaxMessageBytes  int64    `toml:"max_message_bytes"`
}

// DisplayConfig configures the presentation surface.
type DisplayConfig struct {
	Surface      string  `toml:"surface"`
	WindowWidth  int     `toml:"window_width"`
	WindowHeight int     `toml:"window_height"`
	LineHeight   float64 `toml:"line_height"`
	ThemeFile    string  `toml:"theme_file"`
}

// GeometryConfig holds the font sizing constants.
type GeometryConfig struct {
	SafetyFactor float64 `toml:"safety_factor"`
	Aspect       float64 `toml:"aspect"`
	MinFontSize  float64 `toml:"min_font_size"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	fb := transport.DefaultFallback()
	g := render.DefaultGeometry()
	return &Config{
		Connection: ConnectionConfig{
			FallbackHost:     fb.Host,
			FallbackPort:     fb.Port,
			Path:             fb.Path,
			HandshakeTimeout: Duration{10 * time.Second},
			MaxMessageBytes:  4 << 20,
		},
		Display: DisplayConfig{
			Surface:      SurfaceAuto,
			WindowWidth:  1280,
			WindowHeight: 720,
			LineHeight:   1.15,
		},
		Geometry: GeometryConfig{
			SafetyFactor: g.SafetyFactor,
			Aspect:       g.Aspect,
			MinFontSize:  g.MinFontSize,
		},
		LogLevel: "info",
	}
}

// LoadFromFile reads a TOML config file over the defaults. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads TOML configuration from r over the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ASCIIVIEW_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("ASCIIVIEW_ORIGIN"); v != "" {
		c.Connection.Origin = v
	}
	if v := getenv("ASCIIVIEW_ENDPOINT"); v != "" {
		c.Connection.Endpoint = v
	}
	if v := getenv("ASCIIVIEW_SURFACE"); v != "" {
		c.Display.Surface = v
	}
	if v := getenv("ASCIIVIEW_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// RegisterFlags binds command line flags to c. Flag defaults are the
// current values, so load files and env first.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Connection.Origin, "origin", c.Connection.Origin, "Origin the frame source is served from, e.g. http://host:8000 (empty = fallback endpoint)")
	fs.StringVar(&c.Connection.Endpoint, "endpoint", c.Connection.Endpoint, "WebSocket URL to dial, overrides -origin")
	fs.StringVar(&c.Connection.FallbackHost, "fallback-host", c.Connection.FallbackHost, "Host used when no origin is known")
	fs.IntVar(&c.Connection.FallbackPort, "fallback-port", c.Connection.FallbackPort, "Port used when no origin is known")
	fs.Var(&c.Connection.HandshakeTimeout, "handshake-timeout", "WebSocket handshake timeout, e.g. 10s")
	fs.StringVar(&c.Display.Surface, "surface", c.Display.Surface, "Display surface: auto, window or tty")
	fs.IntVar(&c.Display.WindowWidth, "width", c.Display.WindowWidth, "Initial window width in pixels")
	fs.IntVar(&c.Display.WindowHeight, "height", c.Display.WindowHeight, "Initial window height in pixels")
	fs.StringVar(&c.Display.ThemeFile, "themes", c.Display.ThemeFile, "TOML file with extra theme palettes")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Also write logs to this file")
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	switch c.Display.Surface {
	case SurfaceAuto, SurfaceWindow, SurfaceTTY:
	default:
		return fmt.Errorf("unknown surface %q (want auto, window or tty)", c.Display.Surface)
	}
	if c.Display.WindowWidth <= 0 || c.Display.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Display.WindowWidth, c.Display.WindowHeight)
	}
	if c.Display.LineHeight <= 0 {
		return fmt.Errorf("line height must be positive, got %v", c.Display.LineHeight)
	}
	if err := c.RenderGeometry().Validate(); err != nil {
		return err
	}
	if c.Connection.MaxMessageBytes < 0 {
		return fmt.Errorf("max message bytes must not be negative")
	}
	if _, err := c.ResolveEndpoint(); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// RenderGeometry returns the sizing constants for the renderer.
func (c *Config) RenderGeometry() render.Geometry {
	return render.Geometry{
		SafetyFactor: c.Geometry.SafetyFactor,
		Aspect:       c.Geometry.Aspect,
		MinFontSize:  c.Geometry.MinFontSize,
	}
}

// ResolveEndpoint returns the WebSocket URL to dial.
func (c *Config) ResolveEndpoint() (string, error) {
	if c.Connection.Endpoint != "" {
		return c.Connection.Endpoint, nil
	}
	return transport.ResolveEndpoint(c.Connection.Origin, transport.Fallback{
		Host: c.Connection.FallbackHost,
		Port: c.Connection.FallbackPort,
		Path: c.Connection.Path,
	})
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
