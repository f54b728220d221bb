package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// ErrShapeOverflow is returned when a shape describes more elements or bytes
// than fit in an int.
var ErrShapeOverflow = errors.New("shape size overflows int")

// Shape lists the dimensions of a tensor, outermost first. The empty shape
// is a scalar.
type Shape []int

// Count returns the number of elements s describes. Every dimension must be
// positive and the product must fit in an int.
func (s Shape) Count() (int, error) {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return 0, errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return 0, errors.Wrapf(ErrShapeOverflow, "shape %v", []int(s))
		}
		n *= dim
	}
	return n, nil
}

// ByteSize returns the buffer size for elements of elemSize bytes.
func (s Shape) ByteSize(elemSize int) (int, error) {
	n, err := s.Count()
	if err != nil {
		return 0, err
	}
	if elemSize > 0 && n > math.MaxInt/elemSize {
		return 0, errors.Wrapf(ErrShapeOverflow, "shape %v of %d-byte elements", []int(s), elemSize)
	}
	return n * elemSize, nil
}

// NumElements is Count for shapes already known to be valid; it returns 0
// for an invalid shape.
func (s Shape) NumElements() int {
	n, err := s.Count()
	if err != nil {
		return 0
	}
	return n
}

// Validate reports whether Count succeeds.
func (s Shape) Validate() error {
	_, err := s.Count()
	return err
}

// Equal reports whether s and other have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if other[i] != dim {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// RowMajorStrides returns, per dimension, how many elements one step along
// it skips in a contiguous buffer.
func (s Shape) RowMajorStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}
