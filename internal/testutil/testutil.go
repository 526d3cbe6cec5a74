// Package testutil provides common testing utilities to reduce code
// duplication across test files: memory allocator setup and the canonical
// scalar fixtures used throughout the array tests.
package testutil

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/lemur-data/lemur/internal/extension"
)

// TestMemoryContext provides a memory allocator with automatic cleanup.
type TestMemoryContext struct {
	Allocator memory.Allocator
	cleanup   func()
}

// Release performs cleanup of the memory context.
func (tmc *TestMemoryContext) Release() {
	if tmc.cleanup != nil {
		tmc.cleanup()
	}
}

// SetupMemoryTest creates a memory allocator with automatic cleanup for
// tests. Returns a TestMemoryContext that should be released with defer.
func SetupMemoryTest(tb testing.TB) *TestMemoryContext {
	tb.Helper()
	return &TestMemoryContext{
		Allocator: memory.NewGoAllocator(),
		cleanup:   func() {},
	}
}

// CanonicalScalars returns the standard mixed string/NA fixture:
// ["This is", "some text", NA, "data."].
func CanonicalScalars() []any {
	return []any{"This is", "some text", extension.NA, "data."}
}

// CanonicalNulls returns the missing-value vector of CanonicalScalars.
func CanonicalNulls() []bool {
	return []bool{false, false, true, false}
}

// ChunkedStrings builds a chunked string array with one chunk per values
// slice. A nil pointer marks a null element.
func ChunkedStrings(mem memory.Allocator, chunks ...[]*string) *arrow.Chunked {
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

// StrPtr returns a pointer to s, for use with ChunkedStrings.
func StrPtr(s string) *string { return &s }
