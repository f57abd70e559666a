package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Tanh returns tanh(t) element-wise.
func (t *Tensor) Tanh() (*Tensor, error) {
	out := t.backend.Tanh(t.value)
	return derive(OpTanh, out, []*Tensor{t}, []*tensor.RawTensor{out}, nil), nil
}

// tanhBackward: d(tanh x)/dx = 1 - tanh²x = 1 - out².
func tanhBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	out := fn.saved[0]
	ones := tensor.Ones(out.Shape(), out.DType())
	return []*tensor.RawTensor{b.Mul(grad, b.Sub(ones, b.Mul(out, out)))}
}
