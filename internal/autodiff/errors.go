package autodiff

import "errors"

// Errors reported by the engine. All are detected synchronously and
// returned to the immediate caller; none are retried internally. Shape
// violations produced by a backward rule itself are internal defects and
// panic instead (see Backward).
var (
	// ErrNoGradientPath is returned by a backward call on a tensor that
	// does not require gradients: there is nothing to differentiate.
	ErrNoGradientPath = errors.New("no gradient path: tensor does not require grad")

	// ErrAmbiguousGradientShape is returned when backward is called
	// without a seed on a non-scalar output. A vector- or matrix-valued
	// output has no canonical scalar derivative; the caller must supply
	// an explicit seed gradient.
	ErrAmbiguousGradientShape = errors.New("ambiguous gradient shape: non-scalar output needs an explicit seed")

	// ErrShapeMismatch is returned when an explicit seed gradient does
	// not match the output tensor's shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrUnsupportedOperation is returned when an operation's inputs are
	// incompatible with its forward rule (broadcasting, matmul inner
	// dimensions, dtype mixing). It is surfaced before any graph node is
	// constructed.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrGraphReleased is returned by a backward call through a graph
	// whose saved state was freed with Release.
	ErrGraphReleased = errors.New("graph released: saved state was freed by Release")
)
