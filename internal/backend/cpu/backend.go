// Package cpu implements the tensor.Backend interface with pure Go
// kernels. Element-wise loops are chunked across goroutines via
// internal/parallel when tensors are large enough to pay for it.
package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/parallel"
	"github.com/ember-ml/ember/internal/tensor"
)

// CPUBackend implements tensor operations on the host CPU.
type CPUBackend struct {
	par parallel.Config
}

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{par: parallel.DefaultConfig()}
}

// NewSequential creates a CPU backend that never spawns goroutines.
func NewSequential() *CPUBackend {
	return &CPUBackend{par: parallel.Sequential()}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// binary computes an element-wise binary operation, using a dense loop
// when the shapes already match and broadcast strides otherwise.
func (c *CPUBackend) binary(name string, a, b *tensor.RawTensor,
	f32 func(x, y float32) float32, f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, expands, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	out, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	if !expands && a.Shape().Equal(b.Shape()) {
		switch a.DType() {
		case tensor.Float32:
			binarySame(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), f32, c.par)
		case tensor.Float64:
			binarySame(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), f64, c.par)
		}
		return out
	}

	switch a.DType() {
	case tensor.Float32:
		binaryBroadcast(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(),
			a.Shape(), b.Shape(), outShape, f32, c.par)
	case tensor.Float64:
		binaryBroadcast(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(),
			a.Shape(), b.Shape(), outShape, f64, c.par)
	}
	return out
}

// binarySame applies f element-wise over buffers of identical shape.
func binarySame[T tensor.DType](out, a, b []T, f func(T, T) T, cfg parallel.Config) {
	parallel.For(len(out), func(i int) {
		out[i] = f(a[i], b[i])
	}, cfg)
}

// binaryBroadcast applies f over broadcast operands by mapping each
// output index through stride-0 views of the inputs.
func binaryBroadcast[T tensor.DType](out, a, b []T, aShape, bShape, outShape tensor.Shape,
	f func(T, T) T, cfg parallel.Config,
) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	parallel.For(len(out), func(i int) {
		out[i] = f(a[flatIndex(i, outStrides, aStrides)], b[flatIndex(i, outStrides, bStrides)])
	}, cfg)
}
