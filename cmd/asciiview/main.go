// asciiview displays a live stream of text-art frames pushed over a
// WebSocket, sizing the font so each frame fills the view's width.
//
// Usage:
//
//	asciiview [flags]
//
// With no -origin or -endpoint it connects to ws://localhost:8000/ws.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/junsooki/asciiview/internal/config"
	"github.com/junsooki/asciiview/internal/display"
	"github.com/junsooki/asciiview/internal/display/tty"
	"github.com/junsooki/asciiview/internal/display/window"
	"github.com/junsooki/asciiview/internal/render"
	"github.com/junsooki/asciiview/internal/theme"
	"github.com/junsooki/asciiview/internal/transport"
)

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "asciiview: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	surface := cfg.Display.Surface
	if surface == config.SurfaceAuto {
		surface = detectSurface()
	}
	cfg.Display.Surface = surface
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg, surface == config.SurfaceTTY)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	endpoint, err := cfg.ResolveEndpoint()
	if err != nil {
		return err
	}

	themes := theme.NewRegistry()
	if cfg.Display.ThemeFile != "" {
		data, err := os.ReadFile(cfg.Display.ThemeFile)
		if err != nil {
			return fmt.Errorf("read themes: %w", err)
		}
		if err := themes.RegisterTOML(data); err != nil {
			return err
		}
	}

	disp, err := newDisplay(cfg, surface, themes)
	if err != nil {
		return err
	}

	renderer := render.New(disp,
		render.WithGeometry(cfg.RenderGeometry()),
		render.WithLogger(logger.With("component", "renderer")))

	client := transport.NewClient(endpoint, transport.StatusHandler(disp, renderer),
		transport.WithLogger(logger.With("component", "transport")),
		transport.WithHandshakeTimeout(cfg.Connection.HandshakeTimeout.Duration),
		transport.WithReadLimit(cfg.Connection.MaxMessageBytes))

	geom := renderer.Geometry()
	logger.Info("asciiview starting",
		"endpoint", client.Endpoint(),
		"surface", surface,
		"themes", themes.Names(),
		"safety_factor", geom.SafetyFactor,
		"aspect", geom.Aspect,
		"min_font_size", geom.MinFontSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client.Connect(ctx)
	defer client.Close()

	go func() {
		<-ctx.Done()
		disp.Close()
	}()

	// The presentation loop must own the main goroutine (macOS requirement
	// for the window surface).
	if err := disp.Run(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

// parseConfig layers defaults, the -config file, ASCIIVIEW_* env and flags,
// in that order. Flags are parsed twice because the file has to be read
// before flags can override it.
func parseConfig(args []string) (*config.Config, error) {
	parse := func(cfg *config.Config) (string, error) {
		fs := flag.NewFlagSet("asciiview", flag.ContinueOnError)
		path := fs.String("config", "", "Path to TOML configuration file")
		cfg.ApplyEnv(os.Getenv)
		cfg.RegisterFlags(fs)
		return *path, fs.Parse(args)
	}

	cfg := config.DefaultConfig()
	path, err := parse(cfg)
	if err != nil || path == "" {
		return cfg, err
	}
	if cfg, err = config.LoadFromFile(path); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDisplay(cfg *config.Config, surface string, themes *theme.Registry) (display.Display, error) {
	if surface == config.SurfaceTTY {
		return tty.New(themes), nil
	}
	d, err := window.New(display.Options{
		Title:        "asciiview",
		WindowWidth:  cfg.Display.WindowWidth,
		WindowHeight: cfg.Display.WindowHeight,
		LineHeight:   cfg.Display.LineHeight,
	}, themes)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// detectSurface prefers a window when a graphical session is available and
// falls back to the terminal.
func detectSurface() string {
	switch runtime.GOOS {
	case "darwin", "windows":
		return config.SurfaceWindow
	}
	if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
		return config.SurfaceWindow
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return config.SurfaceTTY
	}
	return config.SurfaceWindow
}

// newLogger writes to stderr and, when configured, a log file. The tty
// surface owns the terminal, so stderr is skipped there.
func newLogger(cfg *config.Config, quietStderr bool) (*slog.Logger, func(), error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var writers []io.Writer
	if !quietStderr {
		writers = append(writers, os.Stderr)
	}
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = func() { f.Close() }
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}
