package stringarray

import (
	"fmt"
	"unicode/utf8"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"golang.org/x/exp/slices"

	"github.com/lemur-data/lemur/internal/config"
	"github.com/lemur-data/lemur/internal/errors"
	"github.com/lemur-data/lemur/internal/extension"
	"github.com/lemur-data/lemur/internal/indexers"
	"github.com/lemur-data/lemur/internal/kernels"
)

// StringArray is an extension array for string data in an arrow chunked
// array. It owns exactly one chunked array; the chunks themselves are
// immutable, so writes rebuild the chunk sequence and swap the owned
// reference rather than mutating cells in place.
type StringArray struct {
	data *arrow.Chunked
	mem  memory.Allocator
}

// New creates a StringArray from an arrow.Array (wrapped into a one-chunk
// sequence) or a *arrow.Chunked (adopted as-is, zero copy). Any other input
// type is a type error.
func New(values any, mem memory.Allocator) (*StringArray, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	switch v := values.(type) {
	case *arrow.Chunked:
		if !arrow.TypeEqual(v.DataType(), arrow.BinaryTypes.String) {
			return nil, errors.NewTypeError("New", fmt.Sprintf("expected string storage, got chunked %s", v.DataType()))
		}
		v.Retain()
		return &StringArray{data: v, mem: mem}, nil
	case arrow.Array:
		if !arrow.TypeEqual(v.DataType(), arrow.BinaryTypes.String) {
			return nil, errors.NewTypeError("New", fmt.Sprintf("expected string storage, got %s", v.DataType()))
		}
		return &StringArray{
			data: arrow.NewChunked(arrow.BinaryTypes.String, []arrow.Array{v}),
			mem:  mem,
		}, nil
	default:
		return nil, errors.NewTypeError("New", fmt.Sprintf("unsupported type %T for StringArray", values))
	}
}

// FromSequence builds a new StringArray from host-convention scalars:
// strings pass through, NA sentinels (and nil) become native nulls, anything
// else is a type error. Chunking follows the configured ingestion chunk
// size. This is the only ingestion path from generic sequences.
func FromSequence(scalars []any, mem memory.Allocator) (*StringArray, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	cfg := config.GetConfig()

	chunkSize := cfg.IngestChunkSize
	if chunkSize <= 0 {
		chunkSize = len(scalars)
	}

	var chunks []arrow.Array
	builder := array.NewStringBuilder(mem)
	defer builder.Release()

	for i, scalar := range scalars {
		value, isNull, ok := extension.ToNative(scalar)
		if !ok {
			return nil, errors.NewTypeError("FromSequence", fmt.Sprintf("unsupported scalar type %T at position %d", scalar, i))
		}
		if !isNull && cfg.ValidateUTF8 && !utf8.ValidString(value) {
			return nil, errors.NewValueError("FromSequence", fmt.Sprintf("invalid UTF-8 at position %d", i))
		}

		if isNull {
			builder.AppendNull()
		} else {
			builder.Append(value)
		}
		if builder.Len() == chunkSize {
			chunks = append(chunks, builder.NewStringArray())
		}
	}
	if builder.Len() > 0 || len(chunks) == 0 {
		chunks = append(chunks, builder.NewStringArray())
	}

	data := arrow.NewChunked(arrow.BinaryTypes.String, chunks)
	for _, chunk := range chunks {
		chunk.Release()
	}
	return &StringArray{data: data, mem: mem}, nil
}

// FromStrings builds a new StringArray from plain strings with no nulls.
func FromStrings(values []string, mem memory.Allocator) (*StringArray, error) {
	scalars := make([]any, len(values))
	for i, v := range values {
		scalars[i] = v
	}
	return FromSequence(scalars, mem)
}

// Dtype returns a fresh dtype value describing this array.
func (a *StringArray) Dtype() extension.Dtype { return NewDtype() }

// Len returns the logical number of elements.
func (a *StringArray) Len() int { return a.data.Len() }

// Size is an alias for Len.
func (a *StringArray) Size() int { return a.data.Len() }

// NBytes returns the number of bytes backing this array in memory.
func (a *StringArray) NBytes() int64 {
	var n int64
	for _, chunk := range a.data.Chunks() {
		for _, buf := range chunk.Data().Buffers() {
			if buf != nil {
				n += int64(buf.Len())
			}
		}
	}
	return n
}

// ToArrow returns the underlying chunked array (retains a reference).
func (a *StringArray) ToArrow() *arrow.Chunked {
	a.data.Retain()
	return a.data
}

// Copy returns a new StringArray sharing the same immutable chunked storage.
// Safe because chunks are never mutated in place: a later write to either
// array swaps that array's owned reference only.
func (a *StringArray) Copy() extension.Array {
	a.data.Retain()
	return &StringArray{data: a.data, mem: a.mem}
}

// Release releases the underlying chunked array.
func (a *StringArray) Release() {
	if a.data != nil {
		a.data.Release()
	}
}

// String returns a short description of the array.
func (a *StringArray) String() string {
	return fmt.Sprintf("StringArray[len=%d, nulls=%d]", a.data.Len(), a.data.NullN())
}

func (a *StringArray) empty() *StringArray {
	return &StringArray{data: kernels.Empty(), mem: a.mem}
}

// Get resolves an indexer to a scalar or a new StringArray. Scalar integer
// indexes wrap once from the end; integer lists gather via Take; boolean
// masks filter; ranges slice the chunked storage without copying.
func (a *StringArray) Get(item any) (any, error) {
	idx, err := indexers.Check("Get", a.Len(), item)
	if err != nil {
		return nil, err
	}

	switch idx.Kind {
	case indexers.Empty:
		return a.empty(), nil
	case indexers.IntList:
		result, err := a.Take(idx.Ints, false, nil)
		if err != nil {
			return nil, err
		}
		return result, nil
	case indexers.BoolMask:
		return &StringArray{data: kernels.Filter(a.mem, a.data, idx.Bools), mem: a.mem}, nil
	case indexers.Span:
		if idx.Span.Step != 1 {
			result, err := a.Take(idx.Span.Resolve(a.Len()), false, nil)
			if err != nil {
				return nil, err
			}
			return result, nil
		}
		start, stop := idx.Span.Bounds(a.Len())
		return &StringArray{
			data: array.NewChunkedSlice(a.data, int64(start), int64(stop)),
			mem:  a.mem,
		}, nil
	case indexers.Int:
		i := idx.Int
		if i < 0 {
			i += a.Len()
		}
		if i < 0 || i >= a.Len() {
			return nil, errors.NewOutOfBoundsError("Get", idx.Int, a.Len())
		}
		value, isNull := kernels.Value(a.data, i)
		return extension.FromNative(value, isNull), nil
	default:
		return nil, errors.NewIndexError("Get", errors.ErrInvalidIndexer.Message)
	}
}

// Set writes one or more values at the positions key resolves to. A scalar
// key takes a single scalar value; list, mask, and range keys take either a
// scalar (broadcast) or a sequence of exactly matching length. Positions and
// values are both validated before any element is written, so a bad value or
// out-of-bounds position in a bulk write leaves the array untouched.
func (a *StringArray) Set(key, value any) error {
	idx, err := indexers.Check("Set", a.Len(), key)
	if err != nil {
		return err
	}

	var positions []int
	switch idx.Kind {
	case indexers.Int:
		if !extension.IsScalar(value) {
			return errors.NewValueError("Set", errors.ErrScalarIndexerValue.Message)
		}
		return a.setScalar(idx.Int, value)
	case indexers.Empty:
		positions = nil
	case indexers.IntList:
		positions = idx.Ints
	case indexers.BoolMask:
		positions = indexers.MaskToInts(idx.Bools)
	case indexers.Span:
		positions = idx.Span.Resolve(a.Len())
	}

	values, err := broadcastValues(len(positions), value)
	if err != nil {
		return err
	}
	for i, v := range values {
		if _, _, ok := extension.ToNative(v); !ok {
			return errors.NewValueError("Set", fmt.Sprintf("scalar must be NA or string, got %T at position %d", v, i))
		}
	}
	// Normalize on a copy so a bad position fails before any write and the
	// caller's index slice is never mutated.
	resolved := slices.Clone(positions)
	for i, pos := range resolved {
		if pos < 0 {
			pos += a.Len()
		}
		if pos < 0 || pos >= a.Len() {
			return errors.NewOutOfBoundsError("Set", positions[i], a.Len())
		}
		resolved[i] = pos
	}

	for i, pos := range resolved {
		if err := a.setScalar(pos, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// broadcastValues resolves the value side of a bulk write: scalars broadcast
// to the position count, sequences must match it exactly.
func broadcastValues(n int, value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		if len(v) != n {
			return nil, errors.NewLengthMismatchError("Set", n, len(v))
		}
		return v, nil
	case []string:
		if len(v) != n {
			return nil, errors.NewLengthMismatchError("Set", n, len(v))
		}
		out := make([]any, n)
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	default:
		if !extension.IsScalar(value) {
			return nil, errors.NewValueError("Set", fmt.Sprintf("unsupported value type %T", value))
		}
		out := make([]any, n)
		for i := range out {
			out[i] = value
		}
		return out, nil
	}
}

// setScalar writes a single element by splitting the chunk sequence at the
// index, splicing in a one-element chunk, and swapping in the rebuilt
// structure. Cost is O(number of chunks) per write; a tight loop over many
// indices degrades to repeated whole-structure rebuilds.
func (a *StringArray) setScalar(key int, value any) error {
	if key < 0 {
		key += a.Len()
	}
	if key < 0 || key >= a.Len() {
		return errors.NewOutOfBoundsError("Set", key, a.Len())
	}

	nativeValue, isNull, ok := extension.ToNative(value)
	if !ok {
		return errors.NewValueError("Set", fmt.Sprintf("scalar must be NA or string, got %T", value))
	}

	prefix := array.NewChunkedSlice(a.data, 0, int64(key))
	defer prefix.Release()
	suffix := array.NewChunkedSlice(a.data, int64(key+1), int64(a.Len()))
	defer suffix.Release()

	builder := array.NewStringBuilder(a.mem)
	defer builder.Release()
	if isNull {
		builder.AppendNull()
	} else {
		builder.Append(nativeValue)
	}
	middle := builder.NewStringArray()
	defer middle.Release()

	chunks := make([]arrow.Array, 0, len(prefix.Chunks())+1+len(suffix.Chunks()))
	chunks = append(chunks, prefix.Chunks()...)
	chunks = append(chunks, middle)
	chunks = append(chunks, suffix.Chunks()...)

	newData := arrow.NewChunked(arrow.BinaryTypes.String, chunks)
	a.data.Release()
	a.data = newData
	return nil
}

// Take gathers elements by position into a new StringArray.
//
// With allowFill, negative indices mark slots to fill: they gather as null,
// and a non-NA fillValue then replaces the nulls in the result. Without
// allowFill, negative indices count from the end.
func (a *StringArray) Take(indices []int, allowFill bool, fillValue any) (extension.Array, error) {
	if len(indices) == 0 {
		return a.empty(), nil
	}

	hasNegative := slices.Min(indices) < 0
	if a.Len() == 0 && slices.Max(indices) >= 0 {
		return nil, errors.NewIndexError("Take", errors.ErrNonEmptyTake.Message)
	}
	if maxIdx := slices.Max(indices); maxIdx >= a.Len() {
		return nil, errors.NewOutOfBoundsError("Take", maxIdx, a.Len())
	}

	if allowFill {
		if !hasNegative {
			return &StringArray{data: kernels.Take(a.mem, a.data, indices, nil), mem: a.mem}, nil
		}

		nullMask := make([]bool, len(indices))
		for i, idx := range indices {
			nullMask[i] = idx < 0
		}
		result := kernels.Take(a.mem, a.data, indices, nullMask)
		if extension.IsNA(fillValue) {
			return &StringArray{data: result, mem: a.mem}, nil
		}
		fill, ok := fillValue.(string)
		if !ok {
			result.Release()
			return nil, errors.NewValueError("Take", fmt.Sprintf("fill value must be NA or string, got %T", fillValue))
		}
		filled := kernels.FillNull(a.mem, result, fill)
		result.Release()
		return &StringArray{data: filled, mem: a.mem}, nil
	}

	gather := indices
	if hasNegative {
		// Translate on a copy, never mutating the caller's indices.
		gather = slices.Clone(indices)
		for i, idx := range gather {
			if idx < 0 {
				gather[i] = idx + a.Len()
				if gather[i] < 0 {
					return nil, errors.NewOutOfBoundsError("Take", idx, a.Len())
				}
			}
		}
	}
	return &StringArray{data: kernels.Take(a.mem, a.data, gather, nil), mem: a.mem}, nil
}

// IsNA returns a dense boolean vector marking missing elements.
func (a *StringArray) IsNA() []bool {
	return kernels.IsNull(a.data)
}

// EqualTo computes element-wise equality of this array against other.
// Comparisons against host labeled containers return ErrDefer so the host
// can apply its own broadcasting; another StringArray compares element-wise;
// a scalar compares against every element. Null elements compare as null,
// carried in the result's validity bitmap.
func (a *StringArray) EqualTo(other any) (arrow.Array, error) {
	if _, ok := other.(extension.LabeledContainer); ok {
		return nil, extension.ErrDefer
	}
	if o, ok := other.(*StringArray); ok {
		return kernels.Equal(a.mem, a.data, o.data)
	}
	if !extension.IsScalar(other) {
		return nil, errors.NewTypeError("EqualTo", fmt.Sprintf("neither scalar nor StringArray: %T", other))
	}
	if extension.IsNA(other) {
		return kernels.NullBooleans(a.mem, a.Len()), nil
	}
	s, ok := other.(string)
	if !ok {
		return nil, errors.NewTypeError("EqualTo", fmt.Sprintf("cannot compare string array with scalar of type %T", other))
	}
	return kernels.EqualScalar(a.mem, a.data, s), nil
}

// Reduce applies a named reduction. Only "min" and "max" are supported.
func (a *StringArray) Reduce(name string, skipna bool) (any, error) {
	switch name {
	case "min":
		return a.Min(skipna), nil
	case "max":
		return a.Max(skipna), nil
	default:
		return nil, errors.NewTypeError("Reduce", fmt.Sprintf("cannot perform reduction '%s' with string dtype", name))
	}
}

// Min returns the lexicographic minimum, or NA when the array is empty, all
// null, or skipna is false and any element is null.
func (a *StringArray) Min(skipna bool) any {
	v, ok := kernels.Min(a.data, skipna)
	return extension.FromNative(v, !ok)
}

// Max returns the lexicographic maximum, with the same NA rules as Min.
func (a *StringArray) Max(skipna bool) any {
	v, ok := kernels.Max(a.data, skipna)
	return extension.FromNative(v, !ok)
}

// FillNA is declared by the extension contract but not implemented for this
// array.
func (a *StringArray) FillNA(value any) (extension.Array, error) {
	return nil, errors.NewNotImplementedError("FillNA")
}

var _ extension.Array = (*StringArray)(nil)
