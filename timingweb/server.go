// Package timingweb serves a live browser view of a timing.Recorder: a
// websocket-refreshed summary page and a go-echarts chart of per-name totals.
package timingweb

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/colorfulnotion/timetree/timing"
)

//go:embed viewer.html
var viewerHTML embed.FS

// Server exposes a recorder over HTTP. "/" is the live summary page, "/ws"
// its websocket feed, "/chart" a bar chart rendered from the current
// snapshot on every request.
type Server struct {
	rec      *timing.Recorder
	hub      *hub
	interval time.Duration
}

// NewServer builds a server pushing a fresh summary to connected browsers
// every interval.
func NewServer(rec *timing.Recorder, interval time.Duration) *Server {
	return &Server{
		rec:      rec,
		hub:      newHub(),
		interval: interval,
	}
}

// Handler returns the server's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		data, _ := viewerHTML.ReadFile("viewer.html")
		w.Header().Set("Content-Type", "text/html")
		w.Write(data)
	})
	mux.HandleFunc("/ws", s.hub.wsHandler())
	mux.HandleFunc("/chart", func(w http.ResponseWriter, r *http.Request) {
		if err := RenderChart(w, s.rec); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}

// Start runs the broadcast loop and serves until the listener fails.
func (s *Server) Start(addr string) error {
	go s.hub.run()
	go s.broadcastLoop()

	log.Printf("Timing viewer running at http://localhost%s", addr)
	if err := http.ListenAndServe(addr, s.Handler()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("timing viewer server failed: %w", err)
	}
	return nil
}

func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for range ticker.C {
		s.hub.broadcast <- summaryMessage{
			Summary:   s.rec.Summary(),
			Generated: time.Now().Format(time.RFC3339),
		}
	}
}
