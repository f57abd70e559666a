// Package autodiff implements reverse-mode automatic differentiation over
// dense tensors.
//
// Every differentiable operation on a Tensor produces a new Tensor whose
// Function node remembers the operation kind, the ordered input tensors,
// and whatever values its backward rule needs. The nodes form an implicit
// DAG pointing from outputs back to inputs; Backward walks it from a
// chosen output and accumulates gradients into every tensor on the way
// down that requires them.
//
// Usage:
//
//	b := cpu.New()
//	x := autodiff.NewLeaf(tensor.Full(tensor.Shape{1}, 2, tensor.Float32), true, b)
//	y, _ := x.Mul(x) // y = x²
//	_ = y.Backward()
//	fmt.Println(x.Grad().AsFloat32()) // dy/dx = 2x = [4]
package autodiff

import "github.com/ember-ml/ember/internal/tensor"

// Tensor wraps a dense array with gradient-tracking metadata.
//
// Invariant: gradFn is non-nil exactly when the tensor was produced by an
// operation with at least one grad-requiring input. A tensor with nil
// gradFn is a leaf: a parameter when requiresGrad is true, a plain
// constant otherwise.
type Tensor struct {
	value        *tensor.RawTensor
	grad         *tensor.RawTensor
	gradFn       *Function
	backend      tensor.Backend
	requiresGrad bool
}

// NewLeaf creates a leaf tensor from a forward value. The value is treated
// as immutable from here on.
func NewLeaf(value *tensor.RawTensor, requiresGrad bool, backend tensor.Backend) *Tensor {
	if value == nil {
		panic("autodiff: NewLeaf called with nil value")
	}
	if backend == nil {
		panic("autodiff: NewLeaf called with nil backend")
	}
	return &Tensor{
		value:        value,
		requiresGrad: requiresGrad,
		backend:      backend,
	}
}

// derive builds the output tensor of an operation. Gradient tracking is
// contagious: the output requires grad when any input does, and only then
// is a Function recorded.
func derive(kind OpKind, value *tensor.RawTensor, inputs []*Tensor, saved []*tensor.RawTensor, savedShape tensor.Shape) *Tensor {
	requires := false
	for _, in := range inputs {
		if in.requiresGrad {
			requires = true
			break
		}
	}

	t := &Tensor{
		value:        value,
		requiresGrad: requires,
		backend:      inputs[0].backend,
	}
	if requires {
		t.gradFn = newFunction(kind, inputs, saved, savedShape)
	}
	return t
}

// Value returns the forward payload.
func (t *Tensor) Value() *tensor.RawTensor {
	return t.value
}

// Grad returns the accumulated gradient, or nil if no backward pass has
// reached this tensor yet.
func (t *Tensor) Grad() *tensor.RawTensor {
	return t.grad
}

// RequiresGrad reports whether this tensor participates in gradient
// tracking.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// GradFn returns the Function that produced this tensor, or nil for
// leaves and untracked constants.
func (t *Tensor) GradFn() *Function {
	return t.gradFn
}

// IsLeaf reports whether the tensor was created directly rather than by a
// tracked operation.
func (t *Tensor) IsLeaf() bool {
	return t.gradFn == nil
}

// Shape returns the shape of the forward payload.
func (t *Tensor) Shape() tensor.Shape {
	return t.value.Shape()
}

// ZeroGrad clears the accumulated gradient. Call between backward passes
// that share leaves; gradients otherwise accumulate across calls.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}

// Release walks the graph reachable backward from t and frees every
// Function's saved state. Gradients already accumulated are untouched,
// but any later backward pass through a released Function fails with
// ErrGraphReleased. Use after the final backward pass on a graph to
// return saved operand memory.
func (t *Tensor) Release() {
	seen := make(map[*Function]bool)
	stack := []*Tensor{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn := cur.gradFn
		if fn == nil || seen[fn] {
			continue
		}
		seen[fn] = true
		fn.release()
		stack = append(stack, fn.inputs...)
	}
}
