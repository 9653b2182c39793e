// config.go — internal configuration and functional options for constructors.
//
// builderConfig centralizes the two knobs every constructor needs: the
// vertex ID scheme (idFn) and, for stochastic constructors, the RNG source
// (rng, nil meaning "not yet supplied"). Use newBuilderConfig to obtain
// defaults and then apply any number of BuilderOption; later options
// override earlier ones.
package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before graph construction begins.
// Option constructors validate and panic on meaningless inputs (nil
// functions, nil RNGs); constructors themselves never panic.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds parameters shared across constructors. It is not safe
// for concurrent mutation; each BuildGraph call resolves its own instance.
type builderConfig struct {
	rng  *rand.Rand // optional RNG source; nil means "not yet supplied"
	idFn IDFn       // index -> vertex ID
}

// newBuilderConfig returns a builderConfig seeded with defaults (nil RNG,
// DefaultIDFn) and then applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:  nil,
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.idFn = fn
	}
}

// WithRand supplies an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and assigns it as the
// RNG source, for reproducible stochastic builds.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
