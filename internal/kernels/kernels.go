// Package kernels implements compute primitives over chunked string arrays:
// null predicates, equality, substring matching, case lowering, filter,
// gather, and null filling. Kernels treat their inputs as immutable and
// always build new arrays.
//
// Comparison kernels preserve null semantics: a null input element produces
// a null result element, carried in the result's validity bitmap.
package kernels

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/lemur-data/lemur/internal/errors"
)

// each iterates the logical elements of a chunked string array in order.
func each(c *arrow.Chunked, fn func(value string, isNull bool)) {
	for _, chunk := range c.Chunks() {
		sa := chunk.(*array.String)
		for i := 0; i < sa.Len(); i++ {
			fn(sa.Value(i), sa.IsNull(i))
		}
	}
}

// Value returns the element at logical position i and whether it is null.
// The caller is responsible for bounds checking.
func Value(c *arrow.Chunked, i int) (string, bool) {
	for _, chunk := range c.Chunks() {
		sa := chunk.(*array.String)
		if i < sa.Len() {
			return sa.Value(i), sa.IsNull(i)
		}
		i -= sa.Len()
	}
	return "", true
}

// IsNull returns a dense boolean vector marking the null elements of c.
func IsNull(c *arrow.Chunked) []bool {
	out := make([]bool, 0, c.Len())
	each(c, func(_ string, isNull bool) {
		out = append(out, isNull)
	})
	return out
}

// wrap packages a freshly built array as a one-chunk chunked array.
func wrap(arr arrow.Array) *arrow.Chunked {
	defer arr.Release()
	return arrow.NewChunked(arrow.BinaryTypes.String, []arrow.Array{arr})
}

// Empty returns a zero-length chunked string array.
func Empty() *arrow.Chunked {
	return arrow.NewChunked(arrow.BinaryTypes.String, nil)
}

// Equal computes element-wise equality of two chunked string arrays of the
// same length. Elements where either side is null compare as null.
func Equal(mem memory.Allocator, a, b *arrow.Chunked) (*array.Boolean, error) {
	if a.Len() != b.Len() {
		return nil, errors.NewLengthMismatchError("Equal", a.Len(), b.Len())
	}

	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()

	for i := 0; i < a.Len(); i++ {
		av, anull := Value(a, i)
		bv, bnull := Value(b, i)
		if anull || bnull {
			builder.AppendNull()
			continue
		}
		builder.Append(av == bv)
	}
	return builder.NewBooleanArray(), nil
}

// EqualScalar computes element-wise equality of a chunked string array
// against a single string. Null elements compare as null.
func EqualScalar(mem memory.Allocator, a *arrow.Chunked, s string) *array.Boolean {
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()

	each(a, func(value string, isNull bool) {
		if isNull {
			builder.AppendNull()
			return
		}
		builder.Append(value == s)
	})
	return builder.NewBooleanArray()
}

// NullBooleans returns an all-null boolean array of length n, the result of
// comparing anything against a null scalar.
func NullBooleans(mem memory.Allocator, n int) *array.Boolean {
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()
	builder.AppendNulls(n)
	return builder.NewBooleanArray()
}

// MatchSubstring reports, per element, whether the element contains pat as a
// literal substring. Null elements produce null results.
func MatchSubstring(mem memory.Allocator, a *arrow.Chunked, pat string) *array.Boolean {
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()

	each(a, func(value string, isNull bool) {
		if isNull {
			builder.AppendNull()
			return
		}
		builder.Append(strings.Contains(value, pat))
	})
	return builder.NewBooleanArray()
}

// AsciiLower lowers ASCII letters only, leaving all other bytes untouched.
func AsciiLower(mem memory.Allocator, a *arrow.Chunked) *arrow.Chunked {
	return mapValues(mem, a, asciiToLower)
}

// Utf8Lower lowers the full UTF-8 value.
func Utf8Lower(mem memory.Allocator, a *arrow.Chunked) *arrow.Chunked {
	return mapValues(mem, a, strings.ToLower)
}

func asciiToLower(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// mapValues applies fn to every non-null element, preserving nulls.
func mapValues(mem memory.Allocator, a *arrow.Chunked, fn func(string) string) *arrow.Chunked {
	builder := array.NewStringBuilder(mem)
	defer builder.Release()

	each(a, func(value string, isNull bool) {
		if isNull {
			builder.AppendNull()
			return
		}
		builder.Append(fn(value))
	})
	return wrap(builder.NewStringArray())
}

// Filter selects the elements of a where mask is true. The mask length must
// already have been validated against a.Len().
func Filter(mem memory.Allocator, a *arrow.Chunked, mask []bool) *arrow.Chunked {
	builder := array.NewStringBuilder(mem)
	defer builder.Release()

	i := 0
	each(a, func(value string, isNull bool) {
		if mask[i] {
			if isNull {
				builder.AppendNull()
			} else {
				builder.Append(value)
			}
		}
		i++
	})
	return wrap(builder.NewStringArray())
}

// Take gathers the elements of a at the given positions. When nullMask is
// non-nil it is aligned with indices, and a true entry forces a null output
// at that slot regardless of the source value. Indices must already be
// bounds-checked.
func Take(mem memory.Allocator, a *arrow.Chunked, indices []int, nullMask []bool) *arrow.Chunked {
	builder := array.NewStringBuilder(mem)
	defer builder.Release()

	for i, idx := range indices {
		if nullMask != nil && nullMask[i] {
			builder.AppendNull()
			continue
		}
		value, isNull := Value(a, idx)
		if isNull {
			builder.AppendNull()
			continue
		}
		builder.Append(value)
	}
	return wrap(builder.NewStringArray())
}

// FillNull replaces every null element of a with value.
func FillNull(mem memory.Allocator, a *arrow.Chunked, value string) *arrow.Chunked {
	builder := array.NewStringBuilder(mem)
	defer builder.Release()

	each(a, func(v string, isNull bool) {
		if isNull {
			builder.Append(value)
			return
		}
		builder.Append(v)
	})
	return wrap(builder.NewStringArray())
}

// Min returns the lexicographic minimum of a. ok is false when the result is
// missing: the array is empty, every element is null, or skipna is false and
// any element is null.
func Min(a *arrow.Chunked, skipna bool) (string, bool) {
	return extremum(a, skipna, func(candidate, best string) bool { return candidate < best })
}

// Max returns the lexicographic maximum of a, with the same missing-result
// rules as Min.
func Max(a *arrow.Chunked, skipna bool) (string, bool) {
	return extremum(a, skipna, func(candidate, best string) bool { return candidate > best })
}

func extremum(a *arrow.Chunked, skipna bool, better func(candidate, best string) bool) (string, bool) {
	var best string
	found := false
	sawNull := false

	each(a, func(value string, isNull bool) {
		if isNull {
			sawNull = true
			return
		}
		if !found || better(value, best) {
			best = value
			found = true
		}
	})

	if !found || (!skipna && sawNull) {
		return "", false
	}
	return best, true
}
