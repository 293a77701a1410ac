package nn

import "math/rand"

// Uniform returns a random float32 drawn uniformly from [lo, hi).
//
// Weights and biases are initialized with Uniform(-1, 1); small symmetric
// weights keep the tanh units away from saturation at the start of
// training.
func Uniform(lo, hi float32) float32 {
	//nolint:gosec // math/rand for weight initialization (not security-critical)
	return lo + rand.Float32()*(hi-lo)
}
