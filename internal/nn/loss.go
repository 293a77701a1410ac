package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/engine"
)

// SquaredErrorSum computes Σ (predictionᵢ - targetᵢ)² as a Value.
//
// The reduction is built from engine Sub and Pow operations, so the result
// is itself differentiable: calling Backward on it propagates gradients
// into every prediction node and through them into the model parameters.
//
// Panics on length mismatch or empty input; both are caller programming
// errors.
func SquaredErrorSum(predictions, targets []*engine.Value) *engine.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("SquaredErrorSum: %d predictions vs %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("SquaredErrorSum: empty input")
	}

	loss := predictions[0].Sub(targets[0]).Pow(2)
	for i := 1; i < len(predictions); i++ {
		loss = loss.Add(predictions[i].Sub(targets[i]).Pow(2))
	}
	return loss
}
