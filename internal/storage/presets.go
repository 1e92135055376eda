package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/terrain-synth/internal/core"
	"github.com/vovakirdan/terrain-synth/internal/heightfield"
)

// ErrEmptyName is returned when saving a preset without a name.
var ErrEmptyName = errors.New("storage: preset name is empty")

// Preset is a named, fully baked layer set. Restoring it reproduces the same
// elevations without drawing new randomness.
type Preset struct {
	ID             int64
	Name           string
	NoiseAlgorithm string
	NoiseSeed      int64
	Bounds         heightfield.Bounds
	PostProcess    heightfield.PostProcess
	Shape          heightfield.Shape
	HasShape       bool // Shape is only meaningful when the layers came from a bake
	Layers         []heightfield.Layer
	CreatedAt      time.Time
}

// PresetInfo summarizes a preset for listings.
type PresetInfo struct {
	ID             int64
	Name           string
	NoiseAlgorithm string
	NoiseSeed      int64
	LayerCount     int
	CreatedAt      time.Time
}

// SavePreset stores p under p.Name, replacing any preset with the same name.
// Returns the ID of the inserted record.
func (s *Store) SavePreset(p Preset) (int64, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, ErrEmptyName
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := deletePreset(tx, name); err != nil {
		return 0, fmt.Errorf("storage: cannot replace preset %q: %w", name, err)
	}

	res, err := tx.Exec(
		`INSERT INTO presets
		 (name, noise_algorithm, noise_seed, bound_min, bound_max, post_process,
		  has_shape, width, length, density, elevation_scale, random_weight, weight_value)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		p.NoiseAlgorithm,
		p.NoiseSeed,
		p.Bounds.Min,
		p.Bounds.Max,
		p.PostProcess.String(),
		boolToInt(p.HasShape),
		p.Shape.Width,
		p.Shape.Length,
		p.Shape.Density,
		p.Shape.ElevationScale,
		boolToInt(p.Shape.RandomWeight),
		p.Shape.WeightValue,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save preset: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, l := range p.Layers {
		_, err := tx.Exec(
			`INSERT INTO preset_layers
			 (preset_id, position, offset_x, offset_y, scale_x, scale_y, scale_z, weight)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, l.Offset.X, l.Offset.Y, l.Scale.X, l.Scale.Y, l.Scale.Z, l.Weight,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save layer %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit preset: %w", err)
	}

	return id, nil
}

// LoadPreset retrieves a preset by name with its layers in order.
// Returns nil if no preset has that name.
func (s *Store) LoadPreset(name string) (*Preset, error) {
	var p Preset
	var post string
	var hasShape, randomWeight int
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, noise_algorithm, noise_seed, bound_min, bound_max, post_process,
		        has_shape, width, length, density, elevation_scale, random_weight, weight_value, created_at
		 FROM presets
		 WHERE name = ?`,
		strings.TrimSpace(name),
	).Scan(
		&p.ID,
		&p.Name,
		&p.NoiseAlgorithm,
		&p.NoiseSeed,
		&p.Bounds.Min,
		&p.Bounds.Max,
		&post,
		&hasShape,
		&p.Shape.Width,
		&p.Shape.Length,
		&p.Shape.Density,
		&p.Shape.ElevationScale,
		&randomWeight,
		&p.Shape.WeightValue,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preset: %w", err)
	}

	p.HasShape = hasShape != 0
	p.Shape.RandomWeight = randomWeight != 0
	p.CreatedAt = parseTime(createdAt)

	p.PostProcess, err = heightfield.ParsePostProcess(post)
	if err != nil {
		return nil, fmt.Errorf("storage: preset %q: %w", p.Name, err)
	}

	p.Layers, err = s.presetLayers(p.ID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) presetLayers(presetID int64) ([]heightfield.Layer, error) {
	rows, err := s.db.Query(
		`SELECT offset_x, offset_y, scale_x, scale_y, scale_z, weight
		 FROM preset_layers
		 WHERE preset_id = ?
		 ORDER BY position`,
		presetID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layers: %w", err)
	}
	defer rows.Close()

	layers := []heightfield.Layer{}
	for rows.Next() {
		var off core.Vec2
		var scale core.Vec3
		var weight float64
		if err := rows.Scan(&off.X, &off.Y, &scale.X, &scale.Y, &scale.Z, &weight); err != nil {
			return nil, fmt.Errorf("storage: cannot scan layer: %w", err)
		}
		layers = append(layers, heightfield.Layer{Offset: off, Scale: scale, Weight: weight})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return layers, nil
}

// ListPresets returns all presets ordered by name.
func (s *Store) ListPresets() ([]PresetInfo, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, p.noise_algorithm, p.noise_seed, COUNT(l.position), p.created_at
		 FROM presets p
		 LEFT JOIN preset_layers l ON l.preset_id = p.id
		 GROUP BY p.id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var infos []PresetInfo
	for rows.Next() {
		var info PresetInfo
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.NoiseAlgorithm, &info.NoiseSeed, &info.LayerCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeletePreset removes a preset and its layers.
// Reports whether a preset with that name existed.
func (s *Store) DeletePreset(name string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := deletePreset(tx, strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete preset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return deleted, nil
}
