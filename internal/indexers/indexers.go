// Package indexers validates and normalizes the indexer shapes an extension
// array accepts: scalar integers, ranges, integer lists, and boolean masks.
// Malformed indexers are rejected here so array code only ever sees one of
// the canonical forms.
package indexers

import (
	"github.com/lemur-data/lemur/internal/errors"
)

// Kind identifies the canonical indexer form.
type Kind int

const (
	// Int is a single scalar position.
	Int Kind = iota
	// IntList is a fancy integer indexer.
	IntList
	// BoolMask is a boolean mask of exactly the array's length.
	BoolMask
	// Span is a contiguous range indexer.
	Span
	// Empty is a zero-length iterable indexer of any element type.
	Empty
)

// Range mirrors a slice indexer: endpoints under Python slice rules, where
// negative endpoints count from the end and out-of-range endpoints clamp.
type Range struct {
	Start, Stop, Step int
}

// NewRange returns a contiguous range [start, stop) with step 1.
func NewRange(start, stop int) Range {
	return Range{Start: start, Stop: stop, Step: 1}
}

// Bounds resolves the range endpoints against an array of the given length,
// returning the clamped half-open interval. Only valid for Step == 1.
func (r Range) Bounds(length int) (start, stop int) {
	start, stop = r.Start, r.Stop
	if start < 0 {
		start += length
	}
	if stop < 0 {
		stop += length
	}
	start = clamp(start, 0, length)
	stop = clamp(stop, start, length)
	return start, stop
}

// Resolve materializes the range into positional indices.
func (r Range) Resolve(length int) []int {
	if r.Step == 1 {
		start, stop := r.Bounds(length)
		out := make([]int, 0, stop-start)
		for i := start; i < stop; i++ {
			out = append(out, i)
		}
		return out
	}

	start, stop, step := r.Start, r.Stop, r.Step
	if start < 0 {
		start += length
	}
	if stop < 0 {
		stop += length
	}
	var out []int
	if step > 0 {
		start = clamp(start, 0, length)
		stop = clamp(stop, 0, length)
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else if step < 0 {
		start = clamp(start, -1, length-1)
		stop = clamp(stop, -1, length-1)
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Indexer is the canonical normalized form of an array indexer.
type Indexer struct {
	Kind  Kind
	Int   int
	Ints  []int
	Bools []bool
	Span  Range
}

// Check validates item against an array of the given length and normalizes
// it into an Indexer. op names the calling operation for error context.
func Check(op string, length int, item any) (Indexer, error) {
	switch v := item.(type) {
	case int:
		return Indexer{Kind: Int, Int: v}, nil
	case int32:
		return Indexer{Kind: Int, Int: int(v)}, nil
	case int64:
		return Indexer{Kind: Int, Int: int(v)}, nil
	case Range:
		if v.Step == 0 {
			return Indexer{}, errors.NewIndexError(op, "range step cannot be zero")
		}
		return Indexer{Kind: Span, Span: v}, nil
	case []int:
		if len(v) == 0 {
			return Indexer{Kind: Empty}, nil
		}
		return Indexer{Kind: IntList, Ints: v}, nil
	case []int64:
		if len(v) == 0 {
			return Indexer{Kind: Empty}, nil
		}
		ints := make([]int, len(v))
		for i, x := range v {
			ints[i] = int(x)
		}
		return Indexer{Kind: IntList, Ints: ints}, nil
	case []bool:
		if len(v) == 0 {
			return Indexer{Kind: Empty}, nil
		}
		if len(v) != length {
			return Indexer{}, errors.NewLengthMismatchError(op, length, len(v))
		}
		return Indexer{Kind: BoolMask, Bools: v}, nil
	default:
		return Indexer{}, errors.NewIndexError(op, errors.ErrInvalidIndexer.Message)
	}
}

// MaskToInts converts a boolean mask into the positions where it is true.
func MaskToInts(mask []bool) []int {
	out := make([]int, 0, len(mask))
	for i, b := range mask {
		if b {
			out = append(out, i)
		}
	}
	return out
}
