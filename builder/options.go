package builder

import "math/rand"

// builderConfig is passed by value to every layer.
type builderConfig struct {
	// rng is nil unless WithSeed or WithRand was given.
	rng *rand.Rand
	// octaves of value noise summed by World.
	octaves int
}

const defaultOctaves = 3

// BuilderOption configures BuildGrid.
type BuilderOption func(*builderConfig)

// WithRand attaches r as the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a random source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOctaves sets how many noise octaves World sums. Panics when n < 1.
func WithOctaves(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithOctaves(n<1)")
	}
	return func(c *builderConfig) {
		c.octaves = n
	}
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{octaves: defaultOctaves}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
