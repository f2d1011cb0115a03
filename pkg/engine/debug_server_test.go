package engine

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/widgets"
)

// waitForServer polls the health endpoint until ready or timeout.
func waitForServer(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://%s/health", addr)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

// waitForServerDown polls until the server stops responding or timeout.
func waitForServerDown(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://%s/health", addr)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err != nil {
			return nil // Connection refused = server is down
		}
		resp.Body.Close()
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("server still running after %v", timeout)
}

func TestDebugServer_StartStop(t *testing.T) {
	e := New(raster.AllocBuffer(10, 10), nil)
	addr, err := e.StartDebugServer("127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start debug server: %v", err)
	}
	defer e.StopDebugServer()

	if err := waitForServer(addr, 2*time.Second); err != nil {
		t.Fatalf("server not ready: %v", err)
	}

	again, err := e.StartDebugServer("127.0.0.1:0")
	if err != nil || again != addr {
		t.Errorf("second start = %q, %v; want %q", again, err, addr)
	}

	e.StopDebugServer()
	if err := waitForServerDown(addr, 2*time.Second); err != nil {
		t.Errorf("server did not stop: %v", err)
	}
	if e.inspecting.Load() {
		t.Error("inspection should stop with the server")
	}
}

func TestDebugServer_Tree(t *testing.T) {
	e := New(raster.AllocBuffer(800, 600), nil)
	e.Scene().Add(widgets.ButtonOf(widgets.ButtonConfig{
		X: 300, Y: 250, Width: 200, Height: 50,
		NormalColor: graphics.ColorGreen,
		Label:       "CLICK ME",
	}))
	addr, err := e.StartDebugServer("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer e.StopDebugServer()
	if err := waitForServer(addr, 2*time.Second); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get("http://" + addr + "/tree")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("before the first frame: status %d, want 503", resp.StatusCode)
	}

	e.Frame()

	resp, err = http.Get("http://" + addr + "/tree")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var snap struct {
		Frame uint64 `json:"frame"`
		Roots []struct {
			Type   string             `json:"type"`
			Text   string             `json:"text"`
			State  string             `json:"state"`
			Bounds map[string]float64 `json:"bounds"`
		} `json:"roots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Frame != 1 || len(snap.Roots) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	root := snap.Roots[0]
	if root.Type != "*widgets.Button" || root.Text != "CLICK ME" || root.State != "normal" {
		t.Errorf("root = %+v", root)
	}
	if root.Bounds["x"] != 300 || root.Bounds["width"] != 200 {
		t.Errorf("bounds = %v", root.Bounds)
	}
}

func TestDebugServer_Frames(t *testing.T) {
	e := New(raster.AllocBuffer(10, 10), nil)
	addr, err := e.StartDebugServer("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer e.StopDebugServer()
	if err := waitForServer(addr, 2*time.Second); err != nil {
		t.Fatal(err)
	}
	e.Frame()
	e.Frame()

	resp, err := http.Get("http://" + addr + "/frames")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var timeline FrameTimeline
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		t.Fatal(err)
	}
	if len(timeline.SamplesMs) != 2 || timeline.Last.Frame != 2 {
		t.Errorf("timeline = %+v", timeline)
	}
}

func TestSafeFloat_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{layoutInf(), `"Infinity"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(SafeFloat(tt.in))
		if err != nil || string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
}

func layoutInf() float64 {
	var zero float64
	return 1 / zero
}
