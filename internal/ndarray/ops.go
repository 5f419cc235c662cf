package ndarray

import (
	"fmt"
	"math"
)

// Map returns a new array with f applied to every element.
func (a *NdArray) Map(f func(float64) float64) *NdArray {
	out := &NdArray{st: newStorage(a.st.shape)}
	for i, x := range a.st.data {
		out.st.data[i] = f(x)
	}
	return out
}

// ZipScalar returns a new array with f(x, k) for every element x.
func (a *NdArray) ZipScalar(k float64, f func(x, k float64) float64) *NdArray {
	out := &NdArray{st: newStorage(a.st.shape)}
	for i, x := range a.st.data {
		out.st.data[i] = f(x, k)
	}
	return out
}

// Zip returns a new array with f(x, y) for each pair of elements at the
// same flat position. Lengths must match; the result has a's shape.
func (a *NdArray) Zip(other *NdArray, f func(x, y float64) float64) (*NdArray, error) {
	if a.Len() != other.Len() {
		return nil, fmt.Errorf("%w: %d vs %d elements", ErrLengthMismatch, a.Len(), other.Len())
	}
	out := &NdArray{st: newStorage(a.st.shape)}
	b := other.st.data
	for i, x := range a.st.data {
		out.st.data[i] = f(x, b[i])
	}
	return out, nil
}

// Unary operations.

func (a *NdArray) Abs() *NdArray   { return a.Map(math.Abs) }
func (a *NdArray) Acos() *NdArray  { return a.Map(math.Acos) }
func (a *NdArray) Acosh() *NdArray { return a.Map(math.Acosh) }
func (a *NdArray) Asin() *NdArray  { return a.Map(math.Asin) }
func (a *NdArray) Asinh() *NdArray { return a.Map(math.Asinh) }
func (a *NdArray) Atan() *NdArray  { return a.Map(math.Atan) }
func (a *NdArray) Atanh() *NdArray { return a.Map(math.Atanh) }
func (a *NdArray) Ceil() *NdArray  { return a.Map(math.Ceil) }
func (a *NdArray) Cos() *NdArray   { return a.Map(math.Cos) }
func (a *NdArray) Cosh() *NdArray  { return a.Map(math.Cosh) }
func (a *NdArray) Exp() *NdArray   { return a.Map(math.Exp) }
func (a *NdArray) Floor() *NdArray { return a.Map(math.Floor) }
func (a *NdArray) Log() *NdArray   { return a.Map(math.Log) }
func (a *NdArray) Sin() *NdArray   { return a.Map(math.Sin) }
func (a *NdArray) Sinh() *NdArray  { return a.Map(math.Sinh) }
func (a *NdArray) Sqrt() *NdArray  { return a.Map(math.Sqrt) }
func (a *NdArray) Tan() *NdArray   { return a.Map(math.Tan) }
func (a *NdArray) Tanh() *NdArray  { return a.Map(math.Tanh) }

// Round rounds half to even.
func (a *NdArray) Round() *NdArray { return a.Map(math.RoundToEven) }

// Negate returns -x for every element.
func (a *NdArray) Negate() *NdArray {
	return a.Map(func(x float64) float64 { return -x })
}

// Invert returns 1/x for every element. Zeros become ±Inf.
func (a *NdArray) Invert() *NdArray {
	return a.Map(func(x float64) float64 { return 1 / x })
}

// PseudoInvert returns 1/x for every element, mapping 0 to 0.
func (a *NdArray) PseudoInvert() *NdArray {
	return a.Map(func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return 1 / x
	})
}

// Sigmoid returns 1/(1+e^-x) for every element.
func (a *NdArray) Sigmoid() *NdArray {
	return a.Map(func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
}

// Binary operations. Scalar forms never fail; array forms require equal
// lengths and return ErrLengthMismatch otherwise.

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

func (a *NdArray) AddScalar(k float64) *NdArray     { return a.ZipScalar(k, add) }
func (a *NdArray) SubScalar(k float64) *NdArray     { return a.ZipScalar(k, sub) }
func (a *NdArray) MulScalar(k float64) *NdArray     { return a.ZipScalar(k, mul) }
func (a *NdArray) DivScalar(k float64) *NdArray     { return a.ZipScalar(k, div) }
func (a *NdArray) ModScalar(k float64) *NdArray     { return a.ZipScalar(k, math.Mod) }
func (a *NdArray) PowScalar(k float64) *NdArray     { return a.ZipScalar(k, math.Pow) }
func (a *NdArray) MaximumScalar(k float64) *NdArray { return a.ZipScalar(k, math.Max) }
func (a *NdArray) MinimumScalar(k float64) *NdArray { return a.ZipScalar(k, math.Min) }

func (a *NdArray) Add(b *NdArray) (*NdArray, error)     { return a.Zip(b, add) }
func (a *NdArray) Sub(b *NdArray) (*NdArray, error)     { return a.Zip(b, sub) }
func (a *NdArray) Mul(b *NdArray) (*NdArray, error)     { return a.Zip(b, mul) }
func (a *NdArray) Div(b *NdArray) (*NdArray, error)     { return a.Zip(b, div) }
func (a *NdArray) Mod(b *NdArray) (*NdArray, error)     { return a.Zip(b, math.Mod) }
func (a *NdArray) Pow(b *NdArray) (*NdArray, error)     { return a.Zip(b, math.Pow) }
func (a *NdArray) Maximum(b *NdArray) (*NdArray, error) { return a.Zip(b, math.Max) }
func (a *NdArray) Minimum(b *NdArray) (*NdArray, error) { return a.Zip(b, math.Min) }
