package optim

import "github.com/born-ml/scalargrad/internal/engine"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param += -lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param += -lr * velocity
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.035,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*engine.Value
	lr         float32
	momentum   float32
	velocities map[*engine.Value]float32
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // learning rate (default: 0.01)
	Momentum float32 // momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*engine.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*engine.Value]float32),
	}
}

// Step applies one gradient-descent update to every parameter, writing the
// new value directly into the leaf node.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if s.momentum != 0 {
			v := s.momentum*s.velocities[p] + grad
			s.velocities[p] = v
			grad = v
		}
		p.AddData(-s.lr * grad)
	}
}

// ZeroGrad resets the gradient of every parameter.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate, for schedules that decay it during
// training.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}
