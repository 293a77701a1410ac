package engine

// reluOp records the rectified linear unit: output = max(0, input).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if the forward result is positive, else 0
type reluOp struct {
	input  *Value
	output float32 // cached max(0, input)
}

func relu(input *Value) *Value {
	data := input.data
	if data < 0 {
		data = 0
	}
	return &Value{
		data: data,
		op:   &reluOp{input: input, output: data},
	}
}

// Backward passes the output gradient through only where the unit was
// active.
func (op *reluOp) Backward(outputGrad float32) []float32 {
	if op.output > 0 {
		return []float32{outputGrad}
	}
	return []float32{0}
}

// Inputs returns the operand slot [input].
func (op *reluOp) Inputs() []*Value {
	return []*Value{op.input}
}
