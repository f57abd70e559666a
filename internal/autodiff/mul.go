package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Mul returns t * other element-wise with broadcasting. Both operand
// values are saved for the backward pass.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	if err := checkBinary("mul", t, other); err != nil {
		return nil, err
	}
	out := t.backend.Mul(t.value, other.value)
	saved := []*tensor.RawTensor{t.value, other.value}
	return derive(OpMul, out, []*Tensor{t, other}, saved, nil), nil
}

// mulBackward: d(a*b)/da = b and d(a*b)/db = a, each scaled by the
// incoming gradient and reduced over broadcast axes.
func mulBackward(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	aVal, cVal := fn.saved[0], fn.saved[1]
	return []*tensor.RawTensor{
		reduceBroadcast(b.Mul(grad, cVal), aVal.Shape(), b),
		reduceBroadcast(b.Mul(grad, aVal), cVal.Shape(), b),
	}
}
