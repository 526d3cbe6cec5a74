// Package lemur provides a labeled string column backed by Apache Arrow
// chunked storage, exposed through an extension-array contract. This package
// is the sole public API for the library.
package lemur

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/lemur-data/lemur/internal/extension"
	"github.com/lemur-data/lemur/internal/indexers"
	"github.com/lemur-data/lemur/internal/series"
	"github.com/lemur-data/lemur/internal/stringarray"
)

// NA is the shared missing-value sentinel. Reading a missing element returns
// NA; writing NA stores a null.
var NA = extension.NA

// IsNA reports whether v is the missing-value sentinel (or nil).
func IsNA(v any) bool { return extension.IsNA(v) }

// Range is a slice-style indexer: endpoints follow Python slice rules, where
// negative endpoints count from the end and out-of-range endpoints clamp.
type Range struct {
	Start, Stop, Step int
}

// NewRange returns a contiguous range [start, stop) with step 1.
func NewRange(start, stop int) Range {
	return Range{Start: start, Stop: stop, Step: 1}
}

// normalizeItem translates public indexer types into their internal forms.
func normalizeItem(item any) any {
	if r, ok := item.(Range); ok {
		return indexers.Range(r)
	}
	return item
}

// StringDtype is the public type for the arrow-backed string dtype.
type StringDtype struct {
	d *stringarray.StringDtype
}

// NewStringDtype returns a StringDtype value.
func NewStringDtype() StringDtype {
	return StringDtype{d: stringarray.NewDtype()}
}

// Name returns the dtype's registry name token ("arrow_string").
func (d StringDtype) Name() string { return d.d.Name() }

// Hash returns a stable hash derived solely from the dtype identity.
func (d StringDtype) Hash() uint64 { return d.d.Hash() }

// Equals reports dtype equality: true for any StringDtype and for the
// literal name token as a string.
func (d StringDtype) Equals(other any) bool {
	if o, ok := other.(StringDtype); ok {
		return d.d.Equals(o.d)
	}
	return d.d.Equals(other)
}

// String returns the display form of the dtype.
func (d StringDtype) String() string { return d.d.String() }

// StringArray is the public type for the arrow-backed string extension
// array. It wraps the internal adapter to hide implementation details.
type StringArray struct {
	arr *stringarray.StringArray
}

func wrapArray(arr extension.Array) *StringArray {
	return &StringArray{arr: arr.(*stringarray.StringArray)}
}

// NewStringArray creates a StringArray from an arrow.Array or an
// *arrow.Chunked, adopting the data without copying.
func NewStringArray(values any, mem memory.Allocator) (*StringArray, error) {
	arr, err := stringarray.New(values, mem)
	if err != nil {
		return nil, err
	}
	return &StringArray{arr: arr}, nil
}

// FromSequence builds a StringArray from scalars: strings pass through, NA
// and nil become nulls.
func FromSequence(scalars []any, mem memory.Allocator) (*StringArray, error) {
	arr, err := stringarray.FromSequence(scalars, mem)
	if err != nil {
		return nil, err
	}
	return &StringArray{arr: arr}, nil
}

// FromStrings builds a StringArray from plain strings with no nulls.
func FromStrings(values []string, mem memory.Allocator) (*StringArray, error) {
	arr, err := stringarray.FromStrings(values, mem)
	if err != nil {
		return nil, err
	}
	return &StringArray{arr: arr}, nil
}

// Dtype returns the array's dtype.
func (a *StringArray) Dtype() StringDtype { return NewStringDtype() }

// Len returns the number of elements.
func (a *StringArray) Len() int { return a.arr.Len() }

// NBytes returns the number of bytes backing the array in memory.
func (a *StringArray) NBytes() int64 { return a.arr.NBytes() }

// Get resolves an indexer (int, Range, []int, []bool) to either a scalar
// (string or NA) or a new *StringArray.
func (a *StringArray) Get(item any) (any, error) {
	v, err := a.arr.Get(normalizeItem(item))
	if err != nil {
		return nil, err
	}
	if sub, ok := v.(extension.Array); ok {
		return wrapArray(sub), nil
	}
	return v, nil
}

// Set writes one or more values at the positions key resolves to.
func (a *StringArray) Set(key, value any) error {
	return a.arr.Set(normalizeItem(key), value)
}

// Take gathers elements by position into a new StringArray. With allowFill,
// negative indices produce filled slots (NA or fillValue); without it they
// count from the end.
func (a *StringArray) Take(indices []int, allowFill bool, fillValue any) (*StringArray, error) {
	taken, err := a.arr.Take(indices, allowFill, fillValue)
	if err != nil {
		return nil, err
	}
	return wrapArray(taken), nil
}

// Copy returns a new StringArray sharing the same immutable storage.
func (a *StringArray) Copy() *StringArray {
	return wrapArray(a.arr.Copy())
}

// IsNA returns a dense boolean vector marking missing elements.
func (a *StringArray) IsNA() []bool { return a.arr.IsNA() }

// EqualTo computes element-wise equality against another StringArray, a
// Series, or a scalar. Null elements compare as null in the result's
// validity bitmap.
func (a *StringArray) EqualTo(other any) (arrow.Array, error) {
	if o, ok := other.(*Series); ok {
		// The adapter defers container comparisons to the host; at the
		// public surface that just means comparing against the series'
		// backing array.
		return a.arr.EqualTo(o.s.ExtensionArray())
	}
	return a.arr.EqualTo(unwrap(other))
}

// Reduce applies a named reduction; only "min" and "max" are supported.
func (a *StringArray) Reduce(name string, skipna bool) (any, error) {
	return a.arr.Reduce(name, skipna)
}

// Min returns the lexicographic minimum, or NA when missing.
func (a *StringArray) Min(skipna bool) any { return a.arr.Min(skipna) }

// Max returns the lexicographic maximum, or NA when missing.
func (a *StringArray) Max(skipna bool) any { return a.arr.Max(skipna) }

// FillNA is part of the extension contract but not implemented for this
// array.
func (a *StringArray) FillNA(value any) (*StringArray, error) {
	filled, err := a.arr.FillNA(value)
	if err != nil {
		return nil, err
	}
	return wrapArray(filled), nil
}

// Contains reports, per element, whether the element contains pat as a
// literal substring. Regex matching is not implemented.
func (a *StringArray) Contains(pat string, regex bool) (arrow.Array, error) {
	return a.arr.StrContains(pat, regex)
}

// Lower lowers every element. With ascii, only ASCII letters are lowered.
func (a *StringArray) Lower(ascii bool) (*StringArray, error) {
	lowered, err := a.arr.StrLower(ascii)
	if err != nil {
		return nil, err
	}
	return wrapArray(lowered), nil
}

// ToArrow returns the underlying chunked array (retains a reference).
func (a *StringArray) ToArrow() *arrow.Chunked { return a.arr.ToArrow() }

// String returns a short description of the array.
func (a *StringArray) String() string { return a.arr.String() }

// Release releases the underlying storage.
func (a *StringArray) Release() { a.arr.Release() }

// Series is the public type for a labeled column backed by a StringArray.
type Series struct {
	s *series.Series
}

// NewSeries creates a Series over arr. The series takes over the caller's
// reference to the array.
func NewSeries(name string, arr *StringArray) *Series {
	return &Series{s: series.New(name, arr.arr)}
}

// Name returns the column name.
func (s *Series) Name() string { return s.s.Name() }

// Len returns the length of the series.
func (s *Series) Len() int { return s.s.Len() }

// Value returns the element at i: NA for missing values, the plain string
// otherwise.
func (s *Series) Value(i int) (any, error) { return s.s.Value(i) }

// SetValue writes value at the positions key resolves to.
func (s *Series) SetValue(key, value any) error {
	return s.s.SetValue(normalizeItem(key), value)
}

// IsNull reports whether the element at i is missing.
func (s *Series) IsNull(i int) (bool, error) { return s.s.IsNull(i) }

// IsNA returns the dense missing-value vector of the series.
func (s *Series) IsNA() []bool { return s.s.IsNA() }

// Take gathers the elements at the given positions into a new series.
func (s *Series) Take(indices []int) (*Series, error) {
	taken, err := s.s.Take(indices)
	if err != nil {
		return nil, err
	}
	return &Series{s: taken}, nil
}

// Eq computes element-wise equality against a scalar, a StringArray, or
// another Series.
func (s *Series) Eq(other any) (arrow.Array, error) {
	return s.s.Eq(unwrap(other))
}

// String returns a short description of the series.
func (s *Series) String() string { return s.s.String() }

// Release releases the backing array.
func (s *Series) Release() { s.s.Release() }

// unwrap translates public wrapper types into their internal forms for
// cross-type operations.
func unwrap(v any) any {
	switch o := v.(type) {
	case *StringArray:
		return o.arr
	case *Series:
		return o.s
	default:
		return v
	}
}

// RegisteredDtypes returns the name tokens of all registered extension
// dtypes.
func RegisteredDtypes() []string {
	return extension.RegisteredNames()
}
