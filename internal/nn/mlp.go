package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/engine"
)

// MLP is a multilayer perceptron: a stack of Layers where each layer's
// neuron count is the next layer's input arity.
//
// Example:
//
//	// 3 inputs, two hidden layers of 5, a single output
//	model := nn.NewMLP([]int{3, 5, 5, 1})
//	out := model.Forward(inputs) // len(out) == 1
type MLP struct {
	layers []*Layer
}

// NewMLP creates a perceptron from a layer-size sequence: sizes[0] is the
// input arity and each following entry is a layer's neuron count, so
// [3, 5, 5, 1] builds layers 3→5, 5→5 and 5→1.
func NewMLP(sizes []int) *MLP {
	if len(sizes) < 2 {
		panic(fmt.Sprintf("NewMLP: need at least input and output sizes, got %v", sizes))
	}

	layers := make([]*Layer, len(sizes)-1)
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1])
	}
	return &MLP{layers: layers}
}

// Forward threads the inputs through all layers in order and returns the
// final layer's outputs.
func (m *MLP) Forward(inputs []*engine.Value) []*engine.Value {
	outputs := inputs
	for _, l := range m.layers {
		outputs = l.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of all layers in layer order.
func (m *MLP) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0)
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every parameter in the network.
func (m *MLP) ZeroGrad() {
	for _, l := range m.layers {
		l.ZeroGrad()
	}
}
