// Package config loads the optional fern.yaml that sits next to a host's
// go.mod and resolves it into concrete settings.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
)

// FileName is the name of the configuration file.
const FileName = "fern.yaml"

// Defaults applied by Resolve.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultFPS       = 60
	DefaultFontScale = 1.0
)

// DefaultClearColor is the background used when surface.clear_color is unset.
var DefaultClearColor = graphics.ColorDarkGray

// Config represents the optional fern.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Surface SurfaceConfig `yaml:"surface"`
	Engine  EngineConfig  `yaml:"engine"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// SurfaceConfig describes the pixel buffer.
type SurfaceConfig struct {
	Width      int     `yaml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty"`
	ClearColor string  `yaml:"clear_color,omitempty"`
	FontScale  float64 `yaml:"font_scale,omitempty"`
}

// EngineConfig contains frame loop settings.
type EngineConfig struct {
	FPS int `yaml:"fps,omitempty"`
	// Strict controls whether contract violations panic. Unset means true.
	Strict           *bool  `yaml:"strict,omitempty"`
	DebugAddr        string `yaml:"debug_addr,omitempty"`
	ShowFrameTime    bool   `yaml:"show_frame_time,omitempty"`
	ShowLayoutBounds bool   `yaml:"show_layout_bounds,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Width      int
	Height     int
	ClearColor graphics.Color
	// ClearColorSet reports whether ClearColor came from fern.yaml.
	ClearColorSet    bool
	FontScale        float64
	FPS              int
	Strict           bool
	DebugAddr        string
	ShowFrameTime    bool
	ShowLayoutBounds bool
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("config.Load", errors.KindIO, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes fern.yaml content. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap("config.Parse", errors.KindConfig, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Default returns a configuration with every default spelled out.
func Default() *Config {
	strict := true
	return &Config{
		Surface: SurfaceConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			ClearColor: "darkgray",
			FontScale:  DefaultFontScale,
		},
		Engine: EngineConfig{
			FPS:    DefaultFPS,
			Strict: &strict,
		},
	}
}

// Write encodes cfg as YAML to path.
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap("config.Write", errors.KindConfig, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap("config.Write", errors.KindConfig, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap("config.Write", errors.KindIO, err)
	}
	return nil
}

// LoadOptional reads fern.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return Load(path)
}

// Resolve loads fern.yaml from dir (if present) and fills in defaults. The
// app name falls back to the last element of the module path in dir/go.mod,
// then to the directory name.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir, modulePath)
}

// Resolve fills defaults and validates the configuration.
func (c *Config) Resolve(dir, modulePath string) (*Resolved, error) {
	r := &Resolved{
		Root:             dir,
		ModulePath:       modulePath,
		AppName:          strings.TrimSpace(c.App.Name),
		Width:            c.Surface.Width,
		Height:           c.Surface.Height,
		ClearColor:       DefaultClearColor,
		FontScale:        c.Surface.FontScale,
		FPS:              c.Engine.FPS,
		Strict:           true,
		DebugAddr:        strings.TrimSpace(c.Engine.DebugAddr),
		ShowFrameTime:    c.Engine.ShowFrameTime,
		ShowLayoutBounds: c.Engine.ShowLayoutBounds,
	}
	if r.AppName == "" {
		r.AppName = defaultAppName(modulePath, dir)
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.FontScale == 0 {
		r.FontScale = DefaultFontScale
	}
	if r.FPS == 0 {
		r.FPS = DefaultFPS
	}
	if c.Engine.Strict != nil {
		r.Strict = *c.Engine.Strict
	}
	if s := strings.TrimSpace(c.Surface.ClearColor); s != "" {
		color, err := graphics.ParseColor(s)
		if err != nil {
			return nil, invalid("surface.clear_color: %w", err)
		}
		r.ClearColor = color
		r.ClearColorSet = true
	}

	if r.Width < 0 || r.Height < 0 {
		return nil, invalid("surface size must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.FontScale < 0 {
		return nil, invalid("surface.font_scale must be positive, got %g", r.FontScale)
	}
	if r.FPS < 0 || r.FPS > 1000 {
		return nil, invalid("engine.fps must be between 1 and 1000, got %d", r.FPS)
	}
	return r, nil
}

func invalid(format string, args ...any) error {
	return errors.Wrap("config.Resolve", errors.KindConfig, fmt.Errorf(format, args...))
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when dir
// has no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrap("config.Resolve", errors.KindIO, fmt.Errorf("failed to read go.mod: %w", err))
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", errors.Wrap("config.Resolve", errors.KindConfig, fmt.Errorf("could not determine module path from go.mod"))
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			if len(parts) > 0 {
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "fern_app"
	}
	return base
}
