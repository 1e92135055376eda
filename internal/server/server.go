// Package server exposes a height field over a websocket so external
// consumers (renderers, mesh builders) can sample it remotely.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/terrain-synth/internal/heightfield"
	"github.com/vovakirdan/terrain-synth/internal/noise"
)

// DefaultMaxSegments caps grid requests per axis.
const DefaultMaxSegments = 1024

// DefaultMaxInFlight caps concurrently handled requests per connection.
const DefaultMaxInFlight = 4

// Config holds configuration for the websocket sampler.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Grid is used for grid requests that leave fields unset.
	Grid heightfield.Grid

	// Workers bounds grid sampling concurrency. 0 means GOMAXPROCS.
	Workers int

	// MaxSegments caps SegmentsX and SegmentsY of a grid request.
	MaxSegments int

	// MaxInFlight caps requests handled at once on one connection. Further
	// requests are not read until a slot frees up.
	MaxInFlight int

	// Layers is the target layer count for rebakes without an explicit count.
	Layers int

	// Explicit layers are kept in front of synthesized ones on every rebake.
	Explicit []heightfield.Layer

	// Shape returns the terrain shape for a rebake, drawing any random
	// parameters from rng. Nil disables rebake.
	Shape func(rng heightfield.RandomSource) heightfield.Shape

	// Random feeds rebakes without a seed. The synthesizer is reseeded with
	// it so shape and layer draws come from one sequence. Nil uses a
	// time-seeded source.
	Random heightfield.RandomSource
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     ":8080",
		Grid:        heightfield.DefaultGrid(),
		MaxSegments: DefaultMaxSegments,
		MaxInFlight: DefaultMaxInFlight,
		Layers:      10,
	}
}

// Server serves a Synthesizer over websocket at /ws.
type Server struct {
	config   Config
	synth    *heightfield.Synthesizer
	src      noise.Source
	upgrader websocket.Upgrader
	http     *http.Server
	logger   *log.Logger

	// bakeMu keeps a reseed and its bake together; rng is only used under it.
	bakeMu sync.Mutex
	rng    heightfield.RandomSource
}

// New creates a server around synth, sampling noise from src.
func New(cfg Config, synth *heightfield.Synthesizer, src noise.Source, logger *log.Logger) (*Server, error) {
	if synth == nil || src == nil {
		return nil, errors.New("server: synthesizer and noise source are required")
	}
	if err := cfg.Grid.Validate(); err != nil {
		return nil, fmt.Errorf("server: default grid: %w", err)
	}
	if cfg.MaxSegments <= 0 {
		cfg.MaxSegments = DefaultMaxSegments
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultMaxInFlight
	}
	if cfg.Random == nil {
		cfg.Random = heightfield.NewRandSource(0)
	}
	synth.Reseed(cfg.Random)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		config: cfg,
		synth:  synth,
		src:    src,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Samplers are typically local tools and browsers
			},
		},
		logger: logger,
		rng:    cfg.Random,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler returns the HTTP handler serving /ws and /healthz.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting websocket sampler", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
