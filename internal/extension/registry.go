package extension

import (
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
)

// The process-wide dtype registry. Keyed by the xxhash of the dtype name so
// lookups hash once and compare integers, matching Dtype.Hash.
var (
	registryMu sync.RWMutex
	registry   = make(map[uint64]Dtype)
)

// Register adds dtype to the process-wide registry under its name token.
// Registering a name again replaces the previous entry. Dtypes register
// themselves at package load time.
func Register(dtype Dtype) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[xxhash.Sum64String(dtype.Name())] = dtype
}

// Lookup returns the registered dtype for a name token.
func Lookup(name string) (Dtype, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	dtype, ok := registry[xxhash.Sum64String(name)]
	return dtype, ok
}

// RegisteredNames returns the name tokens of all registered dtypes.
func RegisteredNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, dtype := range registry {
		names = append(names, dtype.Name())
	}
	return names
}
