package nn

import "github.com/born-ml/scalargrad/internal/engine"

// Layer is a row of neurons with equal input arity. Every neuron in the
// layer sees the same input slice.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin)
	}
	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron on the shared inputs and returns one
// output Value per neuron.
func (l *Layer) Forward(inputs []*engine.Value) []*engine.Value {
	outputs := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of all neurons in neuron order.
func (l *Layer) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(l.neurons))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every neuron in the layer.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}
