package tensor

// Backend supplies the arithmetic kernels the autodiff engine runs on.
// The engine validates shapes and dtypes before calling a kernel, so
// implementations treat violated preconditions as programmer errors and
// panic rather than return them.
//
// Kernels never modify their operands and always return freshly allocated
// results (or fresh views, for Reshape): recorded operations keep
// references to their operands for the backward pass.
type Backend interface {
	// Name identifies the backend, e.g. "CPU".
	Name() string

	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise unary operations.
	Neg(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	ReLU(x *RawTensor) *RawTensor

	// MatMul multiplies two 2-D tensors: (M, K) @ (K, N) → (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Transpose swaps the axes of a 2-D tensor.
	Transpose(x *RawTensor) *RawTensor

	// Sum reduces every element to a rank-0 scalar.
	Sum(x *RawTensor) *RawTensor

	// SumDim sums along one dimension. Negative dim counts from the end.
	// With keepDim the reduced dimension stays with size 1, otherwise it
	// is removed.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Reshape returns x viewed under a new shape with the same element
	// count.
	Reshape(x *RawTensor, shape Shape) *RawTensor
}
