package ndarray

import "sync/atomic"

// storage is the shared state behind one or more NdArray handles.
// Handles created by Ref or CopyRef point at the same storage, so a
// reshape or a write through one handle is visible through all of them.
type storage struct {
	shape Shape
	data  []float64
	refs  atomic.Int32
}

// newStorage allocates zeroed storage for a validated shape with refs = 1.
func newStorage(shape Shape) *storage {
	st := &storage{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
	st.refs.Store(1)
	return st
}

func (st *storage) addRef() {
	st.refs.Add(1)
}

func (st *storage) release() {
	st.refs.Add(-1)
}
