package engine

import "math"

// powOp records exponentiation by a constant: output = base^exponent.
//
// The exponent is not a graph node and receives no gradient.
//
// Backward pass:
//   - d(b^e)/db = e * b^(e-1), so grad_b = e * b^(e-1) * outputGrad
//
// Fractional exponents of negative bases produce NaN; nothing guards
// against that and the NaN propagates.
type powOp struct {
	base     *Value
	exponent float32
}

func pow(base *Value, exponent float32) *Value {
	data := float32(math.Pow(float64(base.data), float64(exponent)))
	return &Value{
		data: data,
		op:   &powOp{base: base, exponent: exponent},
	}
}

// Backward computes e * base^(e-1) * outputGrad for the single operand slot.
func (op *powOp) Backward(outputGrad float32) []float32 {
	deriv := op.exponent * float32(math.Pow(float64(op.base.data), float64(op.exponent-1)))
	return []float32{deriv * outputGrad}
}

// Inputs returns the operand slot [base].
func (op *powOp) Inputs() []*Value {
	return []*Value{op.base}
}
