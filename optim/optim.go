// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/scalargrad/internal/engine"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.035})
func NewSGD(params []*engine.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
