package kernels

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedOf builds a chunked string array with one chunk per values slice.
// A nil pointer marks a null element.
func chunkedOf(mem memory.Allocator, chunks ...[]*string) *arrow.Chunked {
	arrs := make([]arrow.Array, 0, len(chunks))
	for _, values := range chunks {
		builder := array.NewStringBuilder(mem)
		for _, v := range values {
			if v == nil {
				builder.AppendNull()
			} else {
				builder.Append(*v)
			}
		}
		arrs = append(arrs, builder.NewStringArray())
		builder.Release()
	}
	return arrow.NewChunked(arrow.BinaryTypes.String, arrs)
}

func ptr(s string) *string { return &s }

func TestValue_AcrossChunks(t *testing.T) {
	mem := memory.NewGoAllocator()
	c := chunkedOf(mem,
		[]*string{ptr("This is"), ptr("some text")},
		[]*string{nil, ptr("data.")},
	)
	defer c.Release()

	require.Equal(t, 4, c.Len())

	v, isNull := Value(c, 0)
	assert.False(t, isNull)
	assert.Equal(t, "This is", v)

	v, isNull = Value(c, 1)
	assert.False(t, isNull)
	assert.Equal(t, "some text", v)

	_, isNull = Value(c, 2)
	assert.True(t, isNull)

	v, isNull = Value(c, 3)
	assert.False(t, isNull)
	assert.Equal(t, "data.", v)
}

func TestIsNull(t *testing.T) {
	mem := memory.NewGoAllocator()
	c := chunkedOf(mem, []*string{ptr("a"), nil}, []*string{nil, ptr("b")})
	defer c.Release()

	assert.Equal(t, []bool{false, true, true, false}, IsNull(c))
}

func TestEqual(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("a"), ptr("b"), nil, ptr("d")})
	defer a.Release()
	b := chunkedOf(mem, []*string{ptr("a")}, []*string{ptr("x"), ptr("c"), ptr("d")})
	defer b.Release()

	result, err := Equal(mem, a, b)
	require.NoError(t, err)
	defer result.Release()

	assert.True(t, result.Value(0))
	assert.False(t, result.Value(1))
	assert.True(t, result.IsNull(2), "null input must compare as null")
	assert.True(t, result.Value(3))
}

func TestEqual_LengthMismatch(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("a")})
	defer a.Release()
	b := chunkedOf(mem, []*string{ptr("a"), ptr("b")})
	defer b.Release()

	_, err := Equal(mem, a, b)
	require.Error(t, err)
}

func TestEqualScalar(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("x"), ptr("y"), nil})
	defer a.Release()

	result := EqualScalar(mem, a, "y")
	defer result.Release()

	assert.False(t, result.Value(0))
	assert.True(t, result.Value(1))
	assert.True(t, result.IsNull(2))
}

func TestNullBooleans(t *testing.T) {
	mem := memory.NewGoAllocator()
	result := NullBooleans(mem, 3)
	defer result.Release()

	require.Equal(t, 3, result.Len())
	assert.Equal(t, 3, result.NullN())
}

func TestMatchSubstring(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("This is"), ptr("some text"), nil, ptr("data.")})
	defer a.Release()

	result := MatchSubstring(mem, a, "text")
	defer result.Release()

	assert.False(t, result.Value(0))
	assert.True(t, result.Value(1))
	assert.True(t, result.IsNull(2), "null input must match as null")
	assert.False(t, result.Value(3))
}

func TestLower(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("ÉFG"), nil, ptr("MiXeD")})
	defer a.Release()

	ascii := AsciiLower(mem, a)
	defer ascii.Release()
	v, isNull := Value(ascii, 0)
	assert.False(t, isNull)
	assert.Equal(t, "Éfg", v, "ascii lowering must not touch non-ASCII bytes")
	_, isNull = Value(ascii, 1)
	assert.True(t, isNull)

	utf8 := Utf8Lower(mem, a)
	defer utf8.Release()
	v, _ = Value(utf8, 0)
	assert.Equal(t, "éfg", v)
	v, _ = Value(utf8, 2)
	assert.Equal(t, "mixed", v)
}

func TestFilter(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("a"), nil}, []*string{ptr("c"), ptr("d")})
	defer a.Release()

	result := Filter(mem, a, []bool{true, true, false, true})
	defer result.Release()

	require.Equal(t, 3, result.Len())
	v, isNull := Value(result, 0)
	assert.False(t, isNull)
	assert.Equal(t, "a", v)
	_, isNull = Value(result, 1)
	assert.True(t, isNull)
	v, _ = Value(result, 2)
	assert.Equal(t, "d", v)
}

func TestTake(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("a"), ptr("b")}, []*string{nil, ptr("d")})
	defer a.Release()

	result := Take(mem, a, []int{3, 0, 2}, nil)
	defer result.Release()

	require.Equal(t, 3, result.Len())
	v, _ := Value(result, 0)
	assert.Equal(t, "d", v)
	v, _ = Value(result, 1)
	assert.Equal(t, "a", v)
	_, isNull := Value(result, 2)
	assert.True(t, isNull)
}

func TestTake_NullMask(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("a"), ptr("b")})
	defer a.Release()

	result := Take(mem, a, []int{0, 0, 1}, []bool{false, true, false})
	defer result.Release()

	v, isNull := Value(result, 0)
	assert.False(t, isNull)
	assert.Equal(t, "a", v)
	_, isNull = Value(result, 1)
	assert.True(t, isNull, "masked slot must gather as null")
	v, _ = Value(result, 2)
	assert.Equal(t, "b", v)
}

func TestFillNull(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("a"), nil, ptr("c")})
	defer a.Release()

	result := FillNull(mem, a, "filled")
	defer result.Release()

	v, isNull := Value(result, 1)
	assert.False(t, isNull)
	assert.Equal(t, "filled", v)
	v, _ = Value(result, 0)
	assert.Equal(t, "a", v)
}

func TestMinMax(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := chunkedOf(mem, []*string{ptr("banana"), nil, ptr("apple"), ptr("cherry")})
	defer a.Release()

	minVal, ok := Min(a, true)
	require.True(t, ok)
	assert.Equal(t, "apple", minVal)

	maxVal, ok := Max(a, true)
	require.True(t, ok)
	assert.Equal(t, "cherry", maxVal)

	_, ok = Min(a, false)
	assert.False(t, ok, "skipna=false with a null element yields a missing result")

	empty := Empty()
	defer empty.Release()
	_, ok = Max(empty, true)
	assert.False(t, ok)
}
