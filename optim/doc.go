// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim is the public API for optimizers that update scalar model
// parameters in place from the gradients a backward pass computed.
package optim
