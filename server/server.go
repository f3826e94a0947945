package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Config struct {
	CORSOrigins []string
}

// Server exposes one editing session over HTTP. Requests are served
// concurrently but every grid call runs under mu, one at a time.
type Server struct {
	mu      sync.Mutex
	grid    *grid.Model
	logger  *zap.Logger
	metrics *metrics
	handler http.Handler
}

func New(g *grid.Model, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		grid:    g,
		logger:  logger,
		metrics: newMetrics(reg),
	}
	s.metrics.parts.Set(float64(g.PartCount()))

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/song", s.handleSong).Methods(http.MethodGet)
	router.HandleFunc("/song/header", s.handleHeader).Methods(http.MethodPut)
	router.HandleFunc("/sheet", s.handleSheet).Methods(http.MethodGet)
	router.HandleFunc("/print", s.handlePrint).Methods(http.MethodGet)
	router.HandleFunc("/transpose", s.handleTranspose).Methods(http.MethodPost)
	router.HandleFunc("/chords/parse", s.handleParse).Methods(http.MethodGet)

	router.HandleFunc("/parts", s.handleAddPart).Methods(http.MethodPost)
	router.HandleFunc("/parts/{id}", s.handleGetPart).Methods(http.MethodGet)
	router.HandleFunc("/parts/{id}", s.handleRemovePart).Methods(http.MethodDelete)
	router.HandleFunc("/parts/{id}/name", s.handleRename).Methods(http.MethodPut)
	router.HandleFunc("/parts/{id}/size", s.handleResize).Methods(http.MethodPut)
	router.HandleFunc("/parts/{id}/duplicate", s.handleDuplicate).Methods(http.MethodPost)
	router.HandleFunc("/parts/{id}/measures/{index:[0-9]+}", s.handleGetMeasure).Methods(http.MethodGet)
	router.HandleFunc("/parts/{id}/measures/{index:[0-9]+}", s.handleSetMeasure).Methods(http.MethodPut)
	router.HandleFunc("/parts/{id}/measures/{index:[0-9]+}", s.handleClearMeasure).Methods(http.MethodDelete)

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Snapshot returns a copy of the song taken between two requests.
func (s *Server) Snapshot() model.Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Song()
}
