package engine

// addOp records an addition: output = left + right.
//
// Backward pass:
//   - d(l+r)/dl = 1, so grad_l = outputGrad
//   - d(l+r)/dr = 1, so grad_r = outputGrad
type addOp struct {
	left  *Value
	right *Value
}

func add(left, right *Value) *Value {
	return &Value{
		data: left.data + right.data,
		op:   &addOp{left: left, right: right},
	}
}

// Backward returns the output gradient unchanged for both operand slots.
// When left and right are the same node, both contributions accumulate.
func (op *addOp) Backward(outputGrad float32) []float32 {
	return []float32{outputGrad, outputGrad}
}

// Inputs returns the operand slots [left, right].
func (op *addOp) Inputs() []*Value {
	return []*Value{op.left, op.right}
}
