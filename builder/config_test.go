// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaults pins the documented deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.edgeProb != DefaultEdgeProbability {
		t.Errorf("default edgeProb: expected %v, got %v", DefaultEdgeProbability, cfg.edgeProb)
	}
	// Uniform [1,10) yields its lower bound without an RNG.
	if got := cfg.weightFn(nil); got != DefaultMinWeight {
		t.Errorf("default weightFn(nil): expected %d, got %d", DefaultMinWeight, got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. Same seed → same sequence.
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed draw %d: %d != %d", i, x, y)
		}
	}

	// 2. WithRand attaches exactly the given instance.
	r := rand.New(rand.NewSource(7))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: rng not attached")
	}

	// 3. Later options override earlier ones.
	if cfg := newBuilderConfig(WithRand(r), WithSeed(1)); cfg.rng == r {
		t.Errorf("WithSeed after WithRand: expected override")
	}
}

// TestWeightAndProbabilityOptions checks that the remaining knobs land in cfg.
func TestWeightAndProbabilityOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithEdgeProbability(0.25), WithConstantWeight(6))
	if cfg.edgeProb != 0.25 {
		t.Errorf("WithEdgeProbability: expected 0.25, got %v", cfg.edgeProb)
	}
	if got := cfg.weightFn(nil); got != 6 {
		t.Errorf("WithConstantWeight: expected 6, got %d", got)
	}

	cfg = newBuilderConfig(WithSeed(3), WithWeightRange(5, 7))
	for i := 0; i < 100; i++ {
		if w := cfg.weightFn(cfg.rng); w < 5 || w >= 7 {
			t.Fatalf("WithWeightRange(5,7): got %d", w)
		}
	}
}

// TestOptionPanics ensures option constructors reject nonsense values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":             func() { WithRand(nil) },
		"WithWeightFn(nil)":         func() { WithWeightFn(nil) },
		"WithEdgeProbability(-0.1)": func() { WithEdgeProbability(-0.1) },
		"WithEdgeProbability(1.1)":  func() { WithEdgeProbability(1.1) },
		"WithWeightRange(0,5)":      func() { WithWeightRange(0, 5) },
		"WithWeightRange(5,5)":      func() { WithWeightRange(5, 5) },
		"WithConstantWeight(0)":     func() { WithConstantWeight(0) },
	}
	for name, fn := range cases {
		name, fn := name, fn
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}
}
