package engine_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/engine"
)

// numericalGradient computes the gradient using central finite differences.
func numericalGradient(f func(float32) float32, x, epsilon float32) float32 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// checkGradient compares the engine's gradient against a finite-difference
// estimate of the same function at the same point.
//
// Numerical gradients carry inherent finite-difference error on top of
// float32 rounding, so the tolerance is loose (1e-2).
func checkGradient(t *testing.T, name string, build func(*engine.Value) *engine.Value, f func(float32) float32, at float32) {
	t.Helper()

	x := engine.New(at)
	y := build(x)
	y.Backward()
	engineGrad := x.Grad()

	numericalGrad := numericalGradient(f, at, 1e-2)

	if math.Abs(float64(engineGrad-numericalGrad)) > 1e-2 {
		t.Errorf("%s at %v: engine grad %f differs from numerical grad %f",
			name, at, engineGrad, numericalGrad)
	}
}

// TestGradientCheck_Tanh compares the tanh backward rule against finite
// differences at several points.
func TestGradientCheck_Tanh(t *testing.T) {
	for _, at := range []float32{-1.5, -0.5, 0.0, 0.5, 1.5} {
		checkGradient(t, "tanh", func(x *engine.Value) *engine.Value {
			return x.Tanh()
		}, func(x float32) float32 {
			return float32(math.Tanh(float64(x)))
		}, at)
	}
}

// TestGradientCheck_Exp compares the exp backward rule against finite
// differences.
func TestGradientCheck_Exp(t *testing.T) {
	for _, at := range []float32{-1.0, 0.0, 1.0} {
		checkGradient(t, "exp", func(x *engine.Value) *engine.Value {
			return x.Exp()
		}, func(x float32) float32 {
			return float32(math.Exp(float64(x)))
		}, at)
	}
}

// TestGradientCheck_Pow compares the constant-exponent power backward rule
// against finite differences.
func TestGradientCheck_Pow(t *testing.T) {
	for _, at := range []float32{0.5, 1.0, 2.0} {
		checkGradient(t, "pow", func(x *engine.Value) *engine.Value {
			return x.Pow(3)
		}, func(x float32) float32 {
			return x * x * x
		}, at)
	}
}

// TestGradientCheck_ReLU compares the relu backward rule against finite
// differences away from the kink at zero.
func TestGradientCheck_ReLU(t *testing.T) {
	for _, at := range []float32{-2.0, -0.5, 0.5, 2.0} {
		checkGradient(t, "relu", func(x *engine.Value) *engine.Value {
			return x.ReLU()
		}, func(x float32) float32 {
			if x < 0 {
				return 0
			}
			return x
		}, at)
	}
}

// TestGradientCheck_Composite compares a composite expression
// f(x) = tanh(x² + 3x) against finite differences.
func TestGradientCheck_Composite(t *testing.T) {
	for _, at := range []float32{-1.0, -0.25, 0.5, 1.0} {
		checkGradient(t, "tanh(x²+3x)", func(x *engine.Value) *engine.Value {
			return x.Mul(x).Add(x.Mul(engine.New(3))).Tanh()
		}, func(x float32) float32 {
			return float32(math.Tanh(float64(x*x + 3*x)))
		}, at)
	}
}
