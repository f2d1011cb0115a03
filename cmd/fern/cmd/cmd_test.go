package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-fern/fern/internal/demo"
	"github.com/go-fern/fern/pkg/config"
	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"800x600", 800, 600, false},
		{"400X800", 400, 800, false},
		{"800", 0, 0, true},
		{"0x10", 0, 0, true},
		{"ax10", 0, 0, true},
		{"10x-1", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("400, 275.5")
	if err != nil {
		t.Fatal(err)
	}
	if p != (graphics.Offset{X: 400, Y: 275.5}) {
		t.Errorf("parsePoint = %v", p)
	}
	for _, bad := range []string{"400", "x,1", "1,y"} {
		if _, err := parsePoint(bad); err == nil {
			t.Errorf("parsePoint(%q) should fail", bad)
		}
	}
}

func TestParseShotArgs(t *testing.T) {
	opts, err := parseShotArgs([]string{
		"--demo=player", "--size", "400x800", "--move", "10,10", "--tap", "200,400", "--frames", "3", "--bounds",
	})
	if err != nil {
		t.Fatal(err)
	}
	if opts.host.demo != "player" || opts.host.width != 400 || opts.host.height != 800 || !opts.host.bounds {
		t.Errorf("host options = %+v", opts.host)
	}
	if opts.out != "player.png" || opts.frames != 3 {
		t.Errorf("out = %q, frames = %d", opts.out, opts.frames)
	}
	want := []shotStep{{at: graphics.Offset{X: 10, Y: 10}}, {tap: true, at: graphics.Offset{X: 200, Y: 400}}}
	if len(opts.steps) != len(want) || opts.steps[0] != want[0] || opts.steps[1] != want[1] {
		t.Errorf("steps = %+v, want %+v", opts.steps, want)
	}

	for _, bad := range [][]string{
		{"--frames", "-1"},
		{"--tap"},
		{"--size", "big"},
		{"stray"},
	} {
		if _, err := parseShotArgs(bad); err == nil {
			t.Errorf("parseShotArgs(%q) should fail", bad)
		}
	}
}

func TestReplayClicksCounter(t *testing.T) {
	cfg, err := (&config.Config{}).Resolve(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	e, d, err := newHost(cfg, hostOptions{demo: "counter"})
	if err != nil {
		t.Fatal(err)
	}
	steps := []shotStep{{tap: true, at: graphics.Offset{X: 400, Y: 275}}, {tap: true, at: graphics.Offset{X: 400, Y: 275}}}
	stats := replay(e, steps, 1)

	if got := d.(*demo.Counter).Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if stats.Frame != 5 {
		t.Errorf("Frame = %d, want 5", stats.Frame)
	}
}

func TestNewHostUnknownDemo(t *testing.T) {
	cfg, _ := (&config.Config{}).Resolve(t.TempDir(), "")
	if _, _, err := newHost(cfg, hostOptions{demo: "nope"}); err == nil {
		t.Error("expected error for unknown demo")
	}
}

func TestNewHostBufferSize(t *testing.T) {
	cfg, err := (&config.Config{}).Resolve(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		opts hostOptions
		want graphics.Size
	}{
		{hostOptions{demo: "counter"}, graphics.Size{Width: config.DefaultWidth, Height: config.DefaultHeight}},
		{hostOptions{demo: "player"}, graphics.Size{Width: demo.PlayerWidth, Height: demo.PlayerHeight}},
		{hostOptions{demo: "player", width: 320, height: 640}, graphics.Size{Width: 320, Height: 640}},
	}
	for _, tt := range tests {
		e, _, err := newHost(cfg, tt.opts)
		if err != nil {
			t.Fatalf("newHost(%+v): %v", tt.opts, err)
		}
		if got := e.Buffer().Size(); got != tt.want {
			t.Errorf("newHost(%+v) buffer = %v, want %v", tt.opts, got, tt.want)
		}
	}
}

func TestShotWritesImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "counter.png")

	err := Execute([]string{"--dir", dir, "shot", "--demo", "counter", "--tap", "400,275", "--out", out})
	if err != nil {
		t.Fatalf("shot: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != config.DefaultWidth || b.Dy() != config.DefaultHeight {
		t.Errorf("image size = %v", b)
	}
	// The pointer rests on the button after the tap, so it is hovered.
	r, g, b, _ := img.At(305, 255).RGBA()
	if r>>8 != 0x90 || g>>8 != 0xEE || b>>8 != 0x90 {
		t.Errorf("button pixel = %02x%02x%02x, want light green", r>>8, g>>8, b>>8)
	}
}

func TestShotRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	err := Execute([]string{"--dir", dir, "shot", "--out", filepath.Join(dir, "out.gif")})
	if err == nil {
		t.Fatal("expected error for .gif output")
	}
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kiosk")
	if err := runInit([]string{dir}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := config.Resolve(dir); err != nil {
		t.Fatalf("written config does not resolve: %v", err)
	}
	err := runInit([]string{dir})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want already exists", err)
	}
	if err := runInit([]string{dir, "--force"}); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	if err := Execute([]string{"paint"}); err == nil {
		t.Error("expected error for unknown command")
	}
	if err := Execute([]string{"--dir"}); err == nil {
		t.Error("expected error for --dir without a value")
	}
}

type captureHandler struct {
	errors.LogHandler
	reported []*errors.FernError
}

func (h *captureHandler) HandleError(err *errors.FernError) {
	h.reported = append(h.reported, err)
}

func TestReportErrorRoutesConfigErrors(t *testing.T) {
	h := &captureHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(h)
	defer errors.SetHandler(old)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("surface:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Execute([]string{"--dir", dir, "shot", "--out", filepath.Join(dir, "out.png")})
	if err == nil {
		t.Fatal("expected an invalid config error")
	}
	ReportError(err)
	if len(h.reported) != 1 || h.reported[0].Kind != errors.KindConfig {
		t.Fatalf("reported = %+v, want one config error", h.reported)
	}

	ReportError(fmt.Errorf("plain failure"))
	if len(h.reported) != 1 {
		t.Errorf("plain errors should not reach the handler, got %d", len(h.reported))
	}
}
