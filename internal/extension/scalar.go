// Package extension defines the capability contract that lets a custom
// backing representation plug into the labeled-array ecosystem: the dtype and
// array protocols, the shared missing-value sentinel, the process-wide dtype
// registry, and the operator dispatch helper.
package extension

// NAType is the type of the NA sentinel.
type NAType struct{}

// String returns the display form of the sentinel.
func (NAType) String() string { return "<NA>" }

// NA is the single shared missing-value sentinel, distinct from any real
// string. Hosts and adapters compare against this one value; the storage
// library's own null representation never escapes the adapter boundary.
var NA = NAType{}

// IsNA reports whether v is the host's missing-value convention: the NA
// sentinel or untyped nil.
func IsNA(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(NAType)
	return ok
}

// IsScalar reports whether v is a scalar under the host's conventions.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, NAType, string, bool, int, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}

// ToNative translates a host-convention scalar into the storage-native
// representation. NA and nil map to null; strings pass through. ok is false
// for any other value. This is the single NA-to-null translation point; all
// ingestion paths go through it.
func ToNative(v any) (value string, isNull bool, ok bool) {
	if IsNA(v) {
		return "", true, true
	}
	s, ok := v.(string)
	return s, false, ok
}

// FromNative translates a storage-native value back into the host convention:
// nulls become the NA sentinel, everything else is the plain string.
func FromNative(value string, isNull bool) any {
	if isNull {
		return NA
	}
	return value
}
