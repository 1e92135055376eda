package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terrain-synth/internal/server"
)

var (
	flagServeAddr   string
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket sampler",
	Long: `Start an HTTP server exposing the height field over a websocket at /ws.

Clients send JSON messages:
  {"type":"sample","x":1,"y":2}
  {"type":"grid","width":8,"length":8,"segmentsX":150,"segmentsY":150}
  {"type":"rebake","seed":42,"layers":10}

Rebakes replace the layers for every connected client; sampling continues
against the previous layers until the new set is ready.

Examples:
  terrain serve
  terrain serve --addr :9000
  terrain serve --preset hills`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Serve a saved preset instead of baking")
}

func runServe(_ *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := loadEnv(ctx)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	synth, src, err := e.synthesizer(ctx, flagServePreset)
	if err != nil {
		e.Close()
		fatal("%v", err)
	}

	explicit, err := e.cfg.ExplicitLayers()
	if err != nil {
		e.Close()
		fatal("%v", err)
	}

	cfg := server.DefaultConfig()
	cfg.Address = e.cfg.Server.Address
	if flagServeAddr != "" {
		cfg.Address = flagServeAddr
	}
	cfg.Grid = e.cfg.GridValue()
	cfg.Workers = e.runtime.Workers
	cfg.Layers = e.cfg.Layers
	cfg.Explicit = explicit
	cfg.Shape = e.cfg.Shape
	cfg.Random = e.rng

	srv, err := server.New(cfg, synth, src, e.logger.WithPrefix("terrain-ws"))
	if err != nil {
		e.Close()
		fatal("creating server: %v", err)
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		e.Close()
		fatal("server error: %v", err)
	}
}
