package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense returns a gonum matrix view of a rank-2 array. The matrix shares
// the array's buffer, so writes through either are visible in both.
func (a *NdArray) Dense() (*mat.Dense, error) {
	if a.Rank() != 2 {
		return nil, fmt.Errorf("%w: Dense requires rank 2, got shape %v", ErrShape, a.st.shape)
	}
	return mat.NewDense(a.st.shape[0], a.st.shape[1], a.st.data), nil
}

// FromDense copies a gonum matrix into a new rank-2 array.
func FromDense(m mat.Matrix) *NdArray {
	r, c := m.Dims()
	out := &NdArray{st: newStorage(Shape{r, c})}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.st.data[i*c+j] = m.At(i, j)
		}
	}
	return out
}
