package engine

import "math"

// tanhOp records the hyperbolic tangent activation: output = tanh(input).
//
// The forward result is cached so the backward pass can use
// d(tanh(x))/dx = 1 - tanh²(x) without recomputing tanh.
type tanhOp struct {
	input  *Value
	output float32 // cached tanh(input)
}

func tanh(input *Value) *Value {
	t := float32(math.Tanh(float64(input.data)))
	return &Value{
		data: t,
		op:   &tanhOp{input: input, output: t},
	}
}

// Backward computes (1 - tanh²(x)) * outputGrad using the cached forward
// output.
func (op *tanhOp) Backward(outputGrad float32) []float32 {
	return []float32{(1 - op.output*op.output) * outputGrad}
}

// Inputs returns the operand slot [input].
func (op *tanhOp) Inputs() []*Value {
	return []*Value{op.input}
}
