package autodiff

import (
	"github.com/google/uuid"

	"github.com/ember-ml/ember/internal/tensor"
)

// OpKind tags a Function with the operation that produced its output.
// The set is closed: backward dispatch is a static table keyed by OpKind,
// not runtime type lookup.
type OpKind uint8

// Supported differentiable operations.
const (
	OpAdd OpKind = iota
	OpSub
	OpNeg
	OpMul
	OpDiv
	OpMatMul
	OpSum
	OpExp
	OpTanh
	OpReLU
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpNeg:
		return "neg"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMatMul:
		return "matmul"
	case OpSum:
		return "sum"
	case OpExp:
		return "exp"
	case OpTanh:
		return "tanh"
	case OpReLU:
		return "relu"
	default:
		return "unknown"
	}
}

// Function is one node of the computation graph: the record of a single
// differentiable operation. It is owned by the tensor it produced and is
// never mutated during traversal (release being the one, explicit
// exception).
//
// inputs is ordered and includes every forward operand, tracked or not,
// so a backward rule's output slice corresponds positionally. saved and
// savedShape hold whatever the backward rule needs (operand values, the
// pre-reduction shape); they are opaque to the traversal.
type Function struct {
	id         uuid.UUID
	kind       OpKind
	inputs     []*Tensor
	saved      []*tensor.RawTensor
	savedShape tensor.Shape
	released   bool
}

func newFunction(kind OpKind, inputs []*Tensor, saved []*tensor.RawTensor, savedShape tensor.Shape) *Function {
	return &Function{
		id:         uuid.New(),
		kind:       kind,
		inputs:     inputs,
		saved:      saved,
		savedShape: savedShape,
	}
}

// ID returns an opaque identifier for debugging and testing.
func (f *Function) ID() uuid.UUID {
	return f.id
}

// Kind returns the operation tag.
func (f *Function) Kind() OpKind {
	return f.kind
}

// NumInputs returns how many operands the forward operation consumed.
func (f *Function) NumInputs() int {
	return len(f.inputs)
}

// Released reports whether the node's saved state was freed.
func (f *Function) Released() bool {
	return f.released
}

func (f *Function) release() {
	f.saved = nil
	f.savedShape = nil
	f.released = true
}
