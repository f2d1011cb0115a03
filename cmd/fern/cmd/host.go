package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-fern/fern/internal/demo"
	"github.com/go-fern/fern/pkg/config"
	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/scene"
)

// hostOptions are the flags shared by commands that run a demo.
type hostOptions struct {
	demo   string
	width  int
	height int
	bounds bool
	debug  string
}

// parseHostFlag consumes one shared flag at args[i] and returns how many
// arguments it used, or 0 if args[i] is not a host flag.
func parseHostFlag(args []string, i int, opts *hostOptions) (int, error) {
	name, value, inline := strings.Cut(args[i], "=")
	next := func() (string, error) {
		if inline {
			return value, nil
		}
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], nil
	}
	used := 2
	if inline {
		used = 1
	}

	switch name {
	case "--demo":
		v, err := next()
		if err != nil {
			return 0, err
		}
		opts.demo = v
	case "--size":
		v, err := next()
		if err != nil {
			return 0, err
		}
		w, h, err := parseSize(v)
		if err != nil {
			return 0, err
		}
		opts.width, opts.height = w, h
	case "--debug-addr":
		v, err := next()
		if err != nil {
			return 0, err
		}
		opts.debug = v
	case "--bounds":
		opts.bounds = true
		return 1, nil
	default:
		return 0, nil
	}
	return used, nil
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (graphics.Offset, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Offset{}, fmt.Errorf("invalid point %q (want X,Y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return graphics.Offset{X: x, Y: y}, nil
}

// newHost builds an engine running the selected demo with the resolved
// configuration applied.
func newHost(cfg *config.Resolved, opts hostOptions) (*engine.Engine, demo.Demo, error) {
	errors.SetStrict(cfg.Strict)

	name := opts.demo
	if name == "" {
		name = "counter"
	}
	d, err := demo.Lookup(name, cfg.FontScale)
	if err != nil {
		return nil, nil, err
	}

	width, height := cfg.Width, cfg.Height
	if s, ok := d.(demo.Sized); ok {
		pref := s.PreferredSize()
		width, height = int(pref.Width), int(pref.Height)
	}
	if opts.width > 0 {
		width, height = opts.width, opts.height
	}
	buf := raster.AllocBuffer(width, height)
	sc := scene.New()
	d.Install(sc, buf.Size())

	background := d.ClearColor()
	if cfg.ClearColorSet {
		background = cfg.ClearColor
	}
	hostOpts := []engine.Option{engine.WithClearColor(background)}
	if cfg.ShowFrameTime || cfg.ShowLayoutBounds || opts.bounds {
		diag := engine.DefaultDiagnosticsConfig()
		diag.ShowFrameTime = cfg.ShowFrameTime
		diag.ShowLayoutBounds = cfg.ShowLayoutBounds || opts.bounds
		diag.TargetFrameTime = time.Second / time.Duration(cfg.FPS)
		hostOpts = append(hostOpts, engine.WithDiagnostics(diag))
	}
	e := engine.New(buf, sc, hostOpts...)

	addr := opts.debug
	if addr == "" {
		addr = cfg.DebugAddr
	}
	if addr != "" {
		bound, err := e.StartDebugServer(addr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start debug server: %w", err)
		}
		log.Printf("debug server listening on http://%s", bound)
	}
	return e, d, nil
}
