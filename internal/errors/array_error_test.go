package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ArrayError
		expected string
	}{
		{
			name:     "type error",
			err:      NewTypeError("New", "unsupported type: int"),
			expected: "New: type error: unsupported type: int",
		},
		{
			name:     "out of bounds",
			err:      NewOutOfBoundsError("Get", 4, 4),
			expected: "Get: index error: index 4 out of bounds for array of length 4",
		},
		{
			name:     "value error",
			err:      NewValueError("Set", "scalar must be NA or string"),
			expected: "Set: value error: scalar must be NA or string",
		},
		{
			name:     "length mismatch",
			err:      NewLengthMismatchError("Set", 3, 2),
			expected: "Set: length error: expected length 3, got 2",
		},
		{
			name:     "not implemented",
			err:      NewNotImplementedError("StrSplit"),
			expected: "StrSplit is not implemented",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestArrayError_Is(t *testing.T) {
	err := NewIndexError("indexing", "only integers, slices and integer or boolean arrays are valid indices")
	assert.ErrorIs(t, err, ErrInvalidIndexer)

	other := NewIndexError("indexing", "different message")
	assert.NotErrorIs(t, other, ErrInvalidIndexer)
}

func TestArrayError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := &ArrayError{Op: "Take", Kind: KindIndex, Message: "gather failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf(NewValueError("Set", "bad value"))
	assert.True(t, ok)
	assert.Equal(t, KindValue, k)

	wrapped := fmt.Errorf("outer: %w", NewNotImplementedError("FillNA"))
	k, ok = KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotImplemented, k)

	_, ok = KindOf(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestIsNotImplemented(t *testing.T) {
	assert.True(t, IsNotImplemented(NewNotImplementedError("StrUpper")))
	assert.False(t, IsNotImplemented(NewTypeError("Reduce", "cannot perform reduction 'sum'")))
	assert.False(t, IsNotImplemented(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "type", KindType.String())
	assert.Equal(t, "index", KindIndex.String())
	assert.Equal(t, "value", KindValue.String())
	assert.Equal(t, "length", KindLength.String())
	assert.Equal(t, "not implemented", KindNotImplemented.String())
	assert.Equal(t, "unknown(99)", Kind(99).String())
}
