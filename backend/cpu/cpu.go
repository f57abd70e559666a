// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU implementation of tensor.Backend.
//
// Example:
//
//	b := cpu.New()
//	x := autodiff.NewLeaf(tensor.Ones(tensor.Shape{3, 3}, tensor.Float32), true, b)
package cpu

import (
	"github.com/ember-ml/ember/internal/backend/cpu"
)

// Backend computes tensor operations on the host CPU.
type Backend = cpu.CPUBackend

// New creates a CPU backend with default parallelism.
func New() *Backend {
	return cpu.New()
}

// NewSequential creates a CPU backend that never spawns goroutines.
func NewSequential() *Backend {
	return cpu.NewSequential()
}
