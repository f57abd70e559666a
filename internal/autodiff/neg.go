package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Neg returns -t element-wise.
func (t *Tensor) Neg() (*Tensor, error) {
	out := t.backend.Neg(t.value)
	return derive(OpNeg, out, []*Tensor{t}, nil, nil), nil
}

// negBackward: d(-x)/dx = -1.
func negBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Neg(grad)}
}
