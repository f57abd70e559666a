package cpu

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/parallel"
	"github.com/ember-ml/ember/internal/tensor"
)

// Neg returns -x element-wise.
func (c *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("neg", x,
		func(v float32) float32 { return -v },
		func(v float64) float64 { return -v })
}

// Exp returns e^x element-wise.
func (c *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("exp", x,
		func(v float32) float32 { return float32(math.Exp(float64(v))) },
		math.Exp)
}

// Tanh returns the hyperbolic tangent element-wise.
func (c *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("tanh", x,
		func(v float32) float32 { return float32(math.Tanh(float64(v))) },
		math.Tanh)
}

// ReLU returns max(0, x) element-wise.
func (c *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("relu", x,
		func(v float32) float32 {
			if v > 0 {
				return v
			}
			return 0
		},
		func(v float64) float64 {
			if v > 0 {
				return v
			}
			return 0
		})
}

func (c *CPUBackend) unary(name string, x *tensor.RawTensor,
	f32 func(v float32) float32, f64 func(v float64) float64,
) *tensor.RawTensor {
	out, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		unaryApply(out.AsFloat32(), x.AsFloat32(), f32, c.par)
	case tensor.Float64:
		unaryApply(out.AsFloat64(), x.AsFloat64(), f64, c.par)
	}
	return out
}

func unaryApply[T tensor.DType](out, in []T, f func(T) T, cfg parallel.Config) {
	parallel.For(len(out), func(i int) {
		out[i] = f(in[i])
	}, cfg)
}
