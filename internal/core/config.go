package core

import "time"

// RuntimeConfig carries process-level settings shared by every command.
type RuntimeConfig struct {
	Seed    int64 // RNG seed for baking and noise (0 = derive from time)
	Workers int   // Parallel workers for grid sampling (0 = GOMAXPROCS)
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
