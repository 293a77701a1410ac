package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/engine"
)

// Neuron is a single tanh unit.
//
// It owns one weight per input plus a bias, all long-lived leaf Values that
// the optimizer mutates in place across epochs.
//
// Forward computes tanh(bias + Σ inputᵢ·weightᵢ).
type Neuron struct {
	weights []*engine.Value // one per input
	bias    *engine.Value
}

// NewNeuron creates a neuron with nin inputs. Weights and bias are
// independent uniform-random leaves in [-1, 1).
func NewNeuron(nin int) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("NewNeuron: input arity must be positive, got %d", nin))
	}

	weights := make([]*engine.Value, nin)
	for i := range weights {
		weights[i] = engine.New(Uniform(-1, 1))
	}

	return &Neuron{
		weights: weights,
		bias:    engine.New(Uniform(-1, 1)),
	}
}

// Forward computes the neuron's activation for the given inputs.
//
// Panics if the input length does not match the weight count; that is a
// caller programming error, not a recoverable condition.
func (n *Neuron) Forward(inputs []*engine.Value) *engine.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(inputs[i].Mul(w))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// ZeroGrad resets the gradients of every weight and the bias.
func (n *Neuron) ZeroGrad() {
	for _, w := range n.weights {
		w.ZeroGrad()
	}
	n.bias.ZeroGrad()
}
