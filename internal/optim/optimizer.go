// Package optim implements optimization algorithms for training scalar
// models.
//
// Optimizers hold the enumerated parameters of a model and update them in
// place from the gradients the backward pass left on the nodes.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.035})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    preds := forward(model, samples)
//	    loss := nn.SquaredErrorSum(preds, targets)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to all parameters, reading each
	// parameter's current gradient and mutating its value in place.
	Step()

	// ZeroGrad resets every parameter gradient to zero. Call before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}
