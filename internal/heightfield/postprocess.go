package heightfield

import (
	"fmt"
	"strings"
)

// PostProcess selects the final step applied to the blended elevation.
type PostProcess int

const (
	// PostProcessRaw returns the sum of clamped layer contributions unchanged.
	PostProcessRaw PostProcess = iota

	// PostProcessRecenter multiplies the sum by the global elevation scale and
	// then halves it (v - v/2).
	PostProcessRecenter
)

// String returns the config name of the mode.
func (p PostProcess) String() string {
	switch p {
	case PostProcessRaw:
		return "raw"
	case PostProcessRecenter:
		return "recenter"
	default:
		return fmt.Sprintf("PostProcess(%d)", int(p))
	}
}

// ParsePostProcess converts a config name into a mode. Empty means raw.
func ParsePostProcess(s string) (PostProcess, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return PostProcessRaw, nil
	case "recenter":
		return PostProcessRecenter, nil
	default:
		return PostProcessRaw, fmt.Errorf("heightfield: unknown post-process mode %q (want raw or recenter)", s)
	}
}

func (p PostProcess) apply(v, elevationScale float64) float64 {
	if p == PostProcessRecenter {
		v *= elevationScale
		v = v - v/2
	}
	return v
}
