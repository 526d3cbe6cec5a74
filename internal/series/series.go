// Package series provides a labeled column backed by an extension array.
// The series is deliberately thin: every element access, write, gather, and
// comparison dispatches into the extension-array contract.
package series

import (
	goerrors "errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/lemur-data/lemur/internal/extension"
)

// Series is a named column whose storage is an extension array.
type Series struct {
	name string
	arr  extension.Array
}

// New creates a Series over an extension array. The series takes over the
// caller's reference to arr.
func New(name string, arr extension.Array) *Series {
	return &Series{name: name, arr: arr}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Len returns the length of the series.
func (s *Series) Len() int { return s.arr.Len() }

// ExtensionArray returns the backing extension array. Implementing this
// marks the series as a labeled container: adapters defer comparisons
// against it back to the series.
func (s *Series) ExtensionArray() extension.Array { return s.arr }

// Dtype returns the dtype of the backing array.
func (s *Series) Dtype() extension.Dtype { return s.arr.Dtype() }

// Value returns the element at i: the NA sentinel for missing values, the
// plain scalar otherwise.
func (s *Series) Value(i int) (any, error) {
	return s.arr.Get(i)
}

// SetValue writes value at the positions key resolves to.
func (s *Series) SetValue(key, value any) error {
	return s.arr.Set(key, value)
}

// IsNull reports whether the element at i is missing.
func (s *Series) IsNull(i int) (bool, error) {
	v, err := s.arr.Get(i)
	if err != nil {
		return false, err
	}
	return extension.IsNA(v), nil
}

// IsNA returns the dense missing-value vector of the series.
func (s *Series) IsNA() []bool { return s.arr.IsNA() }

// Take gathers the elements at the given positions into a new series with
// the same name.
func (s *Series) Take(indices []int) (*Series, error) {
	taken, err := s.arr.Take(indices, false, nil)
	if err != nil {
		return nil, err
	}
	return &Series{name: s.name, arr: taken}, nil
}

// Eq computes element-wise equality against other: a scalar, an extension
// array, or another series. The adapter defers series comparisons back here;
// the series then unwraps the other side's array and retries, which is the
// host's broadcasting step for equal-length columns.
func (s *Series) Eq(other any) (arrow.Array, error) {
	if !extension.ShouldExtensionDispatch(s.arr, other) {
		return nil, fmt.Errorf("cannot compare series %q with %T", s.name, other)
	}

	result, err := s.arr.EqualTo(other)
	if goerrors.Is(err, extension.ErrDefer) {
		if c, ok := other.(extension.LabeledContainer); ok {
			return s.arr.EqualTo(c.ExtensionArray())
		}
	}
	return result, err
}

// String returns a short description of the series.
func (s *Series) String() string {
	return fmt.Sprintf("Series[%s]: %s (len=%d)", s.arr.Dtype().Name(), s.name, s.Len())
}

// Release releases the backing extension array.
func (s *Series) Release() {
	if s.arr != nil {
		s.arr.Release()
	}
}

var _ extension.LabeledContainer = (*Series)(nil)
