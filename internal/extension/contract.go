package extension

import (
	"errors"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ErrDefer signals that the adapter declines an operation and the caller
// should retry with the host's own broadcasting logic. It is deliberately
// distinct from the not-implemented error kind: defer means "not mine",
// not-implemented means "unsupported".
var ErrDefer = errors.New("defer to host container")

// Dtype is the dtype protocol: the identity half of the extension contract.
// Dtype values are value-equal, never identity-equal.
type Dtype interface {
	// Name returns the dtype's registry name token.
	Name() string
	// NAValue returns the shared missing-value sentinel for this dtype.
	NAValue() any
	// Hash returns a stable hash derived solely from the dtype identity.
	Hash() uint64
	// Equals reports dtype equality: true for any instance of the same
	// dtype type and for the literal name token as a string.
	Equals(other any) bool
	// ConstructArrayType returns the array type associated with this dtype,
	// letting the host materialize arrays without a direct dependency.
	ConstructArrayType() ArrayType
}

// ArrayType materializes arrays of an associated dtype from generic scalar
// sequences. It stands in for a compile-time dependency on the concrete
// array type.
type ArrayType interface {
	// FromSequence builds a new array from host-convention scalars
	// (strings and NA sentinels).
	FromSequence(scalars []any, mem memory.Allocator) (Array, error)
}

// Array is the extension-array protocol the labeled-array host dispatches
// through for every element access, slice, mask, write, or null check.
type Array interface {
	// Dtype returns a fresh dtype value describing this array.
	Dtype() Dtype
	// Len returns the logical number of elements.
	Len() int
	// Get resolves an indexer (integer, range, integer list, boolean mask)
	// to a scalar or a new array.
	Get(item any) (any, error)
	// Set writes one or more values at the positions key resolves to.
	Set(key, value any) error
	// Take gathers elements by position into a new array.
	Take(indices []int, allowFill bool, fillValue any) (Array, error)
	// Copy returns a new array sharing the same immutable storage.
	Copy() Array
	// IsNA returns a dense boolean vector marking missing elements.
	IsNA() []bool
	// EqualTo computes element-wise equality against another array or a
	// scalar, returning ErrDefer for host containers.
	EqualTo(other any) (arrow.Array, error)
	// Reduce applies a named reduction ("min", "max").
	Reduce(name string, skipna bool) (any, error)
	// Release releases the underlying storage.
	Release()
}

// LabeledContainer marks host-side labeled containers (series, frames,
// indexes). Adapter comparisons against these defer back to the host.
type LabeledContainer interface {
	// ExtensionArray returns the container's backing extension array.
	ExtensionArray() Array
}
