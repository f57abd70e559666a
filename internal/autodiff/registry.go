package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// backwardRule computes the local gradients of one operation: given the
// gradient flowing into the operation's output, it returns one gradient
// per recorded input, each shaped exactly like that input. Rules are pure:
// they read the Function's saved state and never mutate it or the incoming
// gradient.
type backwardRule func(fn *Function, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor

// backwardRules dispatches OpKind to its local backward implementation.
var backwardRules = map[OpKind]backwardRule{
	OpAdd:    addBackward,
	OpSub:    subBackward,
	OpNeg:    negBackward,
	OpMul:    mulBackward,
	OpDiv:    divBackward,
	OpMatMul: matmulBackward,
	OpSum:    sumBackward,
	OpExp:    expBackward,
	OpTanh:   tanhBackward,
	OpReLU:   reluBackward,
}

// ruleFor looks up the backward rule for an operation. A missing entry
// means an OpKind was added without a rule, which is a defect, not a
// runtime condition.
func ruleFor(kind OpKind) backwardRule {
	rule, ok := backwardRules[kind]
	if !ok {
		panic(fmt.Sprintf("autodiff: no backward rule registered for op %q", kind))
	}
	return rule
}
