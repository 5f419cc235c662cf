package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{1}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{10, 10, 10}, 1000},
		{Shape{2, 1, 3, 1}, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	assert.ErrorIs(t, Shape{}.Validate(), ErrShape)
	assert.ErrorIs(t, Shape{2, 0}.Validate(), ErrShape)
	assert.ErrorIs(t, Shape{-1, 3}.Validate(), ErrShape)
}

func TestShapeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{1}, Shape{7}.Strides())
}

func TestShapeOffsetRowMajor(t *testing.T) {
	s := Shape{2, 3}

	idx, err := s.Offset([]int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = s.Offset([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestShapeOffsetAgreesWithStrides(t *testing.T) {
	s := Shape{3, 4, 5}
	strides := s.Strides()
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 5; k++ {
				idx, err := s.Offset([]int{i, j, k})
				require.NoError(t, err)
				assert.Equal(t, i*strides[0]+j*strides[1]+k*strides[2], idx)
			}
		}
	}
}

func TestShapeOffsetErrors(t *testing.T) {
	s := Shape{2, 3}

	_, err := s.Offset([]int{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = s.Offset([]int{2, 0})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = s.Offset([]int{0, -1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestShapeCloneAndEqual(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c[0] = 9
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2}))
	assert.Equal(t, "2x3", s.String())
}
