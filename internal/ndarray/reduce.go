package ndarray

import "gonum.org/v1/gonum/floats"

// Sum returns the sum of all elements.
func (a *NdArray) Sum() float64 {
	return floats.Sum(a.st.data)
}

// Mean returns the arithmetic mean of all elements.
func (a *NdArray) Mean() float64 {
	return a.Sum() / float64(a.Len())
}

// Softmax exponentiates every element and normalizes by the total.
// Inputs are not shifted by their maximum, so large values overflow.
//
// Example:
//
//	p := a.Softmax()
//	p.Sum() // 1
func (a *NdArray) Softmax() *NdArray {
	e := a.Exp()
	return e.DivScalar(e.Sum())
}
