// Package http serves the observability endpoints for a running stream:
// Prometheus metrics, health, and pipeline throughput stats.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/tickforge/tickforge/internal/domain/features"
	"github.com/tickforge/tickforge/internal/telemetry"
	"github.com/tickforge/tickforge/internal/tickgen"
)

// StatsSource provides point-in-time pipeline stats for the /stats endpoint.
type StatsSource interface {
	GeneratorStats() tickgen.PerfStats
	ProcessorStats() features.ProcStats
}

// Server hosts the metrics and health endpoints.
type Server struct {
	srv    *http.Server
	router *mux.Router
}

// NewServer wires the observability routes and returns an unstarted server.
func NewServer(addr string, registry *telemetry.Registry, stats StatsSource) *Server {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.HandlerFor(registry.Prometheus(), promhttp.HandlerOpts{}))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	router.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"generator": stats.GeneratorStats(),
			"processor": stats.ProcessorStats(),
		})
	}).Methods("GET")

	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		router: router,
	}
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves in the background; ListenAndServe errors other than a clean
// shutdown are logged, not fatal.
func (s *Server) Start() {
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("metrics server listening")
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
