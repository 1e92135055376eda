package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/vovakirdan/terrain-synth/internal/config"
	"github.com/vovakirdan/terrain-synth/internal/core"
	"github.com/vovakirdan/terrain-synth/internal/heightfield"
	"github.com/vovakirdan/terrain-synth/internal/logging"
	"github.com/vovakirdan/terrain-synth/internal/noise"
	"github.com/vovakirdan/terrain-synth/internal/storage"
	"github.com/vovakirdan/terrain-synth/internal/telemetry"
)

// env is what every command needs: the effective config, a logger and
// optional telemetry.
type env struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	rng     *heightfield.RandSource // Seeded from runtime.Seed; shared by bakes and rebakes

	logCloser io.Closer
	shutdown  func(context.Context) error
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagSeed != 0 {
		cfg.Noise.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagNoise != "" {
		cfg.Noise.Algorithm = flagNoise
	}
	if flagPostProcess != "" {
		cfg.PostProcess = flagPostProcess
	}
	if flagWorkers != 0 {
		cfg.Grid.Workers = flagWorkers
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadEnv prepares config, logging and telemetry. Callers must Close it.
func loadEnv(ctx context.Context) (*env, error) {
	// Load .env file for OTEL_* variables; not fatal when missing
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg: cfg,
		runtime: core.RuntimeConfig{
			Seed:    cfg.Noise.Seed,
			Workers: cfg.Grid.Workers,
		},
		logger:    logger,
		logCloser: closer,
	}
	e.runtime.Seed = e.runtime.ResolveSeed()
	e.rng = heightfield.NewRandSource(e.runtime.Seed)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Algorithm:   cfg.Noise.Algorithm,
			Seed:        e.runtime.Seed,
			Layers:      cfg.Layers,
			SampleRatio: cfg.Telemetry.SampleRatio,
		})
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without traces", "error", err)
		} else {
			e.shutdown = shutdown
		}
	}

	return e, nil
}

// Close flushes telemetry and releases the log file.
func (e *env) Close() {
	if e.shutdown != nil {
		if err := e.shutdown(context.Background()); err != nil {
			e.logger.Warn("telemetry shutdown failed", "error", err)
		}
	}
	_ = e.logCloser.Close()
}

// openStore opens the preset database from config.
func (e *env) openStore() (*storage.Store, error) {
	return storage.Open(e.cfg.Storage.DBPath)
}

// bake creates a synthesizer from config and bakes target layers.
// A negative target uses the configured layer count.
func (e *env) bake(ctx context.Context, target int) (*heightfield.Synthesizer, noise.Source, error) {
	src, err := e.cfg.NoiseSource(e.runtime.Seed)
	if err != nil {
		return nil, nil, err
	}

	bounds, err := e.cfg.BoundsValue()
	if err != nil {
		return nil, nil, err
	}
	post, err := e.cfg.PostProcessMode()
	if err != nil {
		return nil, nil, err
	}
	explicit, err := e.cfg.ExplicitLayers()
	if err != nil {
		return nil, nil, err
	}

	synth, err := heightfield.New(bounds,
		heightfield.WithPostProcess(post),
		heightfield.WithRandom(e.rng),
		heightfield.WithLogger(e.logger),
	)
	if err != nil {
		return nil, nil, err
	}

	if target < 0 {
		target = e.cfg.Layers
	}
	if err := synth.Bake(ctx, e.cfg.Shape(e.rng), target, explicit...); err != nil {
		return nil, nil, err
	}

	e.logger.Info("baked terrain",
		"layers", len(synth.Layers()),
		"noise", e.cfg.Noise.Algorithm,
		"seed", e.runtime.Seed,
	)
	return synth, src, nil
}

// loadPreset restores a saved preset from the database.
func (e *env) loadPreset(ctx context.Context, name string) (*heightfield.Synthesizer, noise.Source, error) {
	store, err := e.openStore()
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()

	p, err := store.LoadPreset(name)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, fmt.Errorf("unknown preset %q", name)
	}

	synth, src, err := restorePreset(ctx, p, e.logger)
	if err != nil {
		return nil, nil, err
	}
	e.logger.Info("loaded preset", "name", p.Name, "layers", len(p.Layers), "noise", p.NoiseAlgorithm)
	return synth, src, nil
}

// restorePreset rebuilds the synthesizer and noise source saved in p
// without drawing any randomness.
func restorePreset(ctx context.Context, p *storage.Preset, logger *log.Logger) (*heightfield.Synthesizer, noise.Source, error) {
	src, err := noise.Create(p.NoiseAlgorithm, p.NoiseSeed)
	if err != nil {
		return nil, nil, err
	}

	opts := []heightfield.Option{
		heightfield.WithPostProcess(p.PostProcess),
		heightfield.WithLogger(logger),
	}
	if !p.HasShape {
		opts = append(opts, heightfield.WithLayers(p.Layers...))
	}

	synth, err := heightfield.New(p.Bounds, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	// A zero target keeps exactly the stored layers and records the shape
	// so recenter uses the same elevation scale.
	if p.HasShape {
		if err := synth.Bake(ctx, p.Shape, 0, p.Layers...); err != nil {
			return nil, nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return synth, src, nil
}

// synthesizer returns the preset's synthesizer when name is set, otherwise
// bakes a fresh one from config.
func (e *env) synthesizer(ctx context.Context, preset string) (*heightfield.Synthesizer, noise.Source, error) {
	if preset != "" {
		return e.loadPreset(ctx, preset)
	}
	return e.bake(ctx, -1)
}
