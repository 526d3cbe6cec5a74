// Package stringarray implements an extension array for string data backed
// by an Apache Arrow chunked array. The adapter translates every host-side
// element access, slice, mask, write, or null check into operations on the
// immutable chunked storage, and translates results back into the host's
// NA-sentinel convention.
package stringarray

import (
	"fmt"
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/lemur-data/lemur/internal/errors"
	"github.com/lemur-data/lemur/internal/extension"
)

// DtypeName is the registry name token for the arrow-backed string dtype.
const DtypeName = "arrow_string"

func init() {
	extension.Register(NewDtype())
}

// StringDtype is the extension dtype for string data in an arrow chunked
// array. Instances carry no state: dtype values are value-equal, never
// identity-equal.
type StringDtype struct{}

// NewDtype returns a StringDtype instance.
func NewDtype() *StringDtype {
	return &StringDtype{}
}

// Name returns the dtype's registry name token.
func (d *StringDtype) Name() string { return DtypeName }

// String returns the display form of the dtype.
func (d *StringDtype) String() string { return "StringDtype" }

// NAValue returns the shared missing-value sentinel.
func (d *StringDtype) NAValue() any { return extension.NA }

// Type returns the logical scalar type this dtype's arrays hold.
func (d *StringDtype) Type() reflect.Type { return reflect.TypeOf("") }

// Hash returns a stable hash derived solely from the dtype name.
func (d *StringDtype) Hash() uint64 { return xxhash.Sum64String(DtypeName) }

// Equals reports whether other is equal to this dtype: true for any
// StringDtype instance and for the literal name token as a string, false
// for everything else.
func (d *StringDtype) Equals(other any) bool {
	switch o := other.(type) {
	case *StringDtype:
		return true
	case StringDtype:
		return true
	case string:
		return o == DtypeName
	default:
		return false
	}
}

// ConstructArrayType returns the array type associated with this dtype,
// letting the host materialize arrays without a direct dependency.
func (d *StringDtype) ConstructArrayType() extension.ArrayType {
	return arrayType{}
}

// FromArrow constructs a StringArray adopting an externally owned
// arrow.Array or *arrow.Chunked without copying the data.
func (d *StringDtype) FromArrow(data any, mem memory.Allocator) (*StringArray, error) {
	switch v := data.(type) {
	case arrow.Array, *arrow.Chunked:
		return New(v, mem)
	default:
		return nil, errors.NewTypeError("FromArrow", fmt.Sprintf("unsupported type %T", data))
	}
}

// arrayType is the factory handle returned by ConstructArrayType.
type arrayType struct{}

// FromSequence builds a new StringArray from host-convention scalars.
func (arrayType) FromSequence(scalars []any, mem memory.Allocator) (extension.Array, error) {
	return FromSequence(scalars, mem)
}

var _ extension.Dtype = (*StringDtype)(nil)
