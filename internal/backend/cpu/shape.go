package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Transpose swaps the axes of a 2-D tensor: (M, N) → (N, M).
func (c *CPUBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: only 2D tensors supported, got %dD", len(shape)))
	}
	m, n := shape[0], shape[1]

	out, err := tensor.NewRaw(tensor.Shape{n, m}, x.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		transposeCopy(out.AsFloat32(), x.AsFloat32(), m, n)
	case tensor.Float64:
		transposeCopy(out.AsFloat64(), x.AsFloat64(), m, n)
	}
	return out
}

func transposeCopy[T tensor.DType](out, in []T, m, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j*m+i] = in[i*n+j]
		}
	}
}

// Reshape returns x viewed under a new shape. The buffer is shared: no
// kernel mutates tensors, so the view is safe.
func (c *CPUBackend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out, err := x.WithShape(shape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return out
}
