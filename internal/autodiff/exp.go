package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Exp returns e^t element-wise. The output is saved: it is exactly the
// local derivative.
func (t *Tensor) Exp() (*Tensor, error) {
	out := t.backend.Exp(t.value)
	return derive(OpExp, out, []*Tensor{t}, []*tensor.RawTensor{out}, nil), nil
}

// expBackward: d(e^x)/dx = e^x = out.
func expBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{b.Mul(grad, fn.saved[0])}
}
