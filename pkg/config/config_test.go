package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/counter\n\ngo 1.24\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.ModulePath != "example.com/acme/counter" {
		t.Errorf("ModulePath = %q", r.ModulePath)
	}
	if r.AppName != "counter" {
		t.Errorf("AppName = %q, want counter", r.AppName)
	}
	if r.Width != DefaultWidth || r.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", r.Width, r.Height, DefaultWidth, DefaultHeight)
	}
	if r.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", r.FPS, DefaultFPS)
	}
	if r.FontScale != DefaultFontScale {
		t.Errorf("FontScale = %g, want %g", r.FontScale, DefaultFontScale)
	}
	if r.ClearColor != graphics.ColorDarkGray {
		t.Errorf("ClearColor = %v, want dark gray", r.ClearColor)
	}
	if !r.Strict {
		t.Error("Strict should default to true")
	}
	if r.ClearColorSet {
		t.Error("ClearColorSet should be false without fern.yaml")
	}
}

func TestResolveVersionedModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/player/v2\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "player" {
		t.Errorf("AppName = %q, want player", r.AppName)
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kiosk")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.ModulePath != "" {
		t.Errorf("ModulePath = %q, want empty", r.ModulePath)
	}
	if r.AppName != "kiosk" {
		t.Errorf("AppName = %q, want kiosk", r.AppName)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/demo\n")
	writeFile(t, dir, FileName, `app:
  name: Jukebox
surface:
  width: 320
  height: 240
  clear_color: tomato
  font_scale: 2
engine:
  fps: 30
  strict: false
  debug_addr: 127.0.0.1:9339
  show_frame_time: true
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "Jukebox" {
		t.Errorf("AppName = %q", r.AppName)
	}
	if r.Width != 320 || r.Height != 240 {
		t.Errorf("size = %dx%d", r.Width, r.Height)
	}
	if r.ClearColor != graphics.RGB(0xFF, 0x63, 0x47) || !r.ClearColorSet {
		t.Errorf("ClearColor = %v", r.ClearColor)
	}
	if r.FontScale != 2 || r.FPS != 30 {
		t.Errorf("FontScale = %g, FPS = %d", r.FontScale, r.FPS)
	}
	if r.Strict {
		t.Error("Strict should be false")
	}
	if r.DebugAddr != "127.0.0.1:9339" || !r.ShowFrameTime || r.ShowLayoutBounds {
		t.Errorf("engine settings = %+v", r)
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative width", "surface:\n  width: -1\n"},
		{"bad color", "surface:\n  clear_color: nope\n"},
		{"negative scale", "surface:\n  font_scale: -2\n"},
		{"fps too high", "engine:\n  fps: 5000\n"},
		{"unknown key", "surface:\n  depth: 3\n"},
		{"malformed", "surface: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)

			_, err := Resolve(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			var fe *errors.FernError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a FernError", err)
			}
			if fe.Kind != errors.KindConfig {
				t.Errorf("Kind = %v, want %v", fe.Kind, errors.KindConfig)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.Surface.Width != 0 || cfg.Engine.Strict != nil {
		t.Errorf("Parse(nil) = %+v, want zero config", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	var fe *errors.FernError
	if !errors.As(err, &fe) || fe.Kind != errors.KindIO {
		t.Fatalf("Load of missing file = %v, want KindIO", err)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, FileName), Default()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Width != DefaultWidth || r.FPS != DefaultFPS || !r.Strict || r.ClearColor != DefaultClearColor {
		t.Errorf("resolved defaults = %+v", r)
	}
}
