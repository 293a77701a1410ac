package engine

import "math"

// expOp records the exponential: output = e^input.
//
// Backward pass:
//   - d(e^x)/dx = e^x, which is the cached forward output itself
type expOp struct {
	input  *Value
	output float32 // cached e^input
}

func exp(input *Value) *Value {
	e := float32(math.Exp(float64(input.data)))
	return &Value{
		data: e,
		op:   &expOp{input: input, output: e},
	}
}

// Backward computes e^x * outputGrad using the cached forward output.
func (op *expOp) Backward(outputGrad float32) []float32 {
	return []float32{op.output * outputGrad}
}

// Inputs returns the operand slot [input].
func (op *expOp) Inputs() []*Value {
	return []*Value{op.input}
}
