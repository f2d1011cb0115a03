package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"
)

// debugServer serves scene snapshots and frame timings over HTTP.
type debugServer struct {
	server   *http.Server
	listener net.Listener
	mu       sync.Mutex
}

// StartDebugServer serves /tree, /frames and /health on addr (for example
// "localhost:9999"; port 0 picks a free port) and returns the bound address.
// Calling it while the server runs returns the existing address.
func (e *Engine) StartDebugServer(addr string) (string, error) {
	if e.debug == nil {
		e.debug = &debugServer{}
	}
	d := e.debug
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.server != nil {
		return d.listener.Addr().String(), nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("debug server listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/tree", e.handleTree)
	mux.HandleFunc("/frames", e.handleFrames)
	mux.HandleFunc("/health", handleHealth)

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	d.server = server
	d.listener = listener
	e.inspecting.Store(true)

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			d.mu.Lock()
			d.server = nil
			d.listener = nil
			d.mu.Unlock()
			log.Printf("debug server error: %v", err)
		}
	}()

	return listener.Addr().String(), nil
}

// StopDebugServer gracefully shuts down the debug server.
func (e *Engine) StopDebugServer() {
	if e.debug == nil {
		return
	}
	d := e.debug
	d.mu.Lock()
	server := d.server
	d.server = nil
	d.listener = nil
	d.mu.Unlock()

	e.inspecting.Store(false)
	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (e *Engine) handleTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snap := e.Snapshot()
	if snap == nil {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snap)
}

// FrameTimeline is the payload of the /frames endpoint.
type FrameTimeline struct {
	Last      Stats           `json:"last"`
	AverageMs float64         `json:"averageMs"`
	SamplesMs []float64       `json:"samplesMs"`
	Samples   []time.Duration `json:"-"`
}

func (e *Engine) handleFrames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	samples := e.timings.Samples()
	resp := FrameTimeline{
		AverageMs: toMillis(e.timings.Average()),
		Samples:   samples,
	}
	resp.SamplesMs = make([]float64, len(samples))
	for i, d := range samples {
		resp.SamplesMs[i] = toMillis(d)
	}
	e.snapMu.RLock()
	if e.snapshot != nil {
		resp.Last = e.lastPublished
	}
	e.snapMu.RUnlock()
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to a buffer first so encoding errors become a 500.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
