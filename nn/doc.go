// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public API for building scalar multilayer perceptrons
// on top of the autodiff engine: Neuron, Layer, MLP and the squared-error
// loss.
package nn
