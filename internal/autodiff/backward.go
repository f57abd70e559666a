package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// workItem is one pending edge of the backward traversal: a tensor and
// the gradient arriving along that edge.
type workItem struct {
	t    *Tensor
	grad *tensor.RawTensor
}

// Backward runs the backward pass from a scalar output, seeding with
// ones. It is a thin wrapper over BackwardWith: for a non-scalar output
// there is no canonical scalar derivative, so the call fails with
// ErrAmbiguousGradientShape and the caller must pass an explicit seed.
func (t *Tensor) Backward() error {
	if !t.requiresGrad {
		return fmt.Errorf("backward: %w", ErrNoGradientPath)
	}
	if !t.value.Shape().IsScalar() {
		return fmt.Errorf("backward: %w (output shape %v)",
			ErrAmbiguousGradientShape, t.value.Shape())
	}
	return t.BackwardWith(tensor.Ones(t.value.Shape(), t.value.DType()))
}

// BackwardWith runs the backward pass from t with an explicit seed
// gradient, which must match t's value in shape and dtype.
//
// The traversal walks the graph depth-first with an explicit worklist (no
// call-stack recursion, so graph depth is not bounded by goroutine stack
// size). Each visited tensor has the edge's gradient added into its grad
// field; accumulation, never overwrite, is what sums the contributions of
// a tensor that fans out into several consumers. A fan-out node is
// visited once per incoming edge and re-propagates that edge's specific
// gradient through its own Function.
//
// All precondition failures are returned before any grad field is
// touched. A backward rule producing a gradient whose shape disagrees
// with its input panics: that is an engine defect, not a caller error.
func (t *Tensor) BackwardWith(seed *tensor.RawTensor) error {
	if !t.requiresGrad {
		return fmt.Errorf("backward: %w", ErrNoGradientPath)
	}
	if seed == nil {
		return fmt.Errorf("backward: %w: nil seed gradient", ErrShapeMismatch)
	}
	if !seed.Shape().Equal(t.value.Shape()) {
		return fmt.Errorf("backward: %w: seed shape %v, output shape %v",
			ErrShapeMismatch, seed.Shape(), t.value.Shape())
	}
	if seed.DType() != t.value.DType() {
		return fmt.Errorf("backward: %w: seed dtype %s, output dtype %s",
			ErrShapeMismatch, seed.DType(), t.value.DType())
	}
	if t.gradFn != nil && t.gradFn.released {
		return fmt.Errorf("backward: %w", ErrGraphReleased)
	}

	stack := []workItem{{t: t, grad: seed}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur := item.t
		cur.accumulate(item.grad)

		fn := cur.gradFn
		if fn == nil {
			continue // leaf: this path terminates at a parameter
		}
		if fn.released {
			// Release marks every reachable Function, so entry-point
			// checking covers whole released graphs; this guards graphs
			// stitched onto a separately released subgraph.
			return fmt.Errorf("backward: %w (op %s)", ErrGraphReleased, fn.kind)
		}

		inputGrads := ruleFor(fn.kind)(fn, item.grad, cur.backend)
		if len(inputGrads) != len(fn.inputs) {
			panic(fmt.Sprintf("autodiff: op %s returned %d gradients for %d inputs",
				fn.kind, len(inputGrads), len(fn.inputs)))
		}

		for i, in := range fn.inputs {
			if !in.requiresGrad {
				continue
			}
			g := inputGrads[i]
			if !g.Shape().Equal(in.value.Shape()) {
				panic(fmt.Sprintf("autodiff: op %s produced gradient shape %v for input %d of shape %v",
					fn.kind, g.Shape(), i, in.value.Shape()))
			}
			stack = append(stack, workItem{t: in, grad: g})
		}
	}
	return nil
}

// accumulate adds an incoming gradient into t.grad, allocating on first
// touch. The incoming array is cloned so later accumulation into t.grad
// can never alias a gradient still queued for another edge.
func (t *Tensor) accumulate(g *tensor.RawTensor) {
	if t.grad == nil {
		t.grad = g.Clone()
		return
	}
	t.grad = t.backend.Add(t.grad, g)
}
