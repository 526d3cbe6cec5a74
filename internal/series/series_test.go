package series

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemur-data/lemur/internal/extension"
	"github.com/lemur-data/lemur/internal/stringarray"
	"github.com/lemur-data/lemur/internal/testutil"
)

func canonicalSeries(t *testing.T, name string) *Series {
	t.Helper()
	mem := testutil.SetupMemoryTest(t)
	arr, err := stringarray.FromSequence(testutil.CanonicalScalars(), mem.Allocator)
	require.NoError(t, err)
	return New(name, arr)
}

func TestSeries_Basics(t *testing.T) {
	s := canonicalSeries(t, "messages")
	defer s.Release()

	assert.Equal(t, "messages", s.Name())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "arrow_string", s.Dtype().Name())
	assert.Equal(t, "Series[arrow_string]: messages (len=4)", s.String())
	assert.NotNil(t, s.ExtensionArray())
}

func TestSeries_ValueAndNulls(t *testing.T) {
	s := canonicalSeries(t, "messages")
	defer s.Release()

	v, err := s.Value(1)
	require.NoError(t, err)
	assert.Equal(t, "some text", v)

	v, err = s.Value(2)
	require.NoError(t, err)
	assert.Equal(t, extension.NA, v)

	isNull, err := s.IsNull(2)
	require.NoError(t, err)
	assert.True(t, isNull)

	isNull, err = s.IsNull(0)
	require.NoError(t, err)
	assert.False(t, isNull)

	assert.Equal(t, testutil.CanonicalNulls(), s.IsNA())
}

func TestSeries_SetValue(t *testing.T) {
	s := canonicalSeries(t, "messages")
	defer s.Release()

	require.NoError(t, s.SetValue(1, "rewritten"))
	v, err := s.Value(1)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", v)
	assert.Equal(t, 4, s.Len())
}

func TestSeries_Take(t *testing.T) {
	s := canonicalSeries(t, "messages")
	defer s.Release()

	taken, err := s.Take([]int{3, 0})
	require.NoError(t, err)
	defer taken.Release()

	assert.Equal(t, "messages", taken.Name())
	require.Equal(t, 2, taken.Len())
	v, err := taken.Value(0)
	require.NoError(t, err)
	assert.Equal(t, "data.", v)
}

func TestSeries_EqScalar(t *testing.T) {
	s := canonicalSeries(t, "messages")
	defer s.Release()

	result, err := s.Eq("data.")
	require.NoError(t, err)
	defer result.Release()

	boolResult := result.(*array.Boolean)
	assert.False(t, boolResult.Value(0))
	assert.True(t, boolResult.Value(3))
	assert.True(t, boolResult.IsNull(2))
}

func TestSeries_EqSeries(t *testing.T) {
	left := canonicalSeries(t, "left")
	defer left.Release()
	right := canonicalSeries(t, "right")
	defer right.Release()

	require.NoError(t, right.SetValue(0, "changed"))

	// The adapter defers container comparisons; the series unwraps the
	// other side and retries.
	result, err := left.Eq(right)
	require.NoError(t, err)
	defer result.Release()

	boolResult := result.(*array.Boolean)
	assert.False(t, boolResult.Value(0))
	assert.True(t, boolResult.Value(1))
	assert.True(t, boolResult.IsNull(2))
	assert.True(t, boolResult.Value(3))
}

func TestSeries_EqUnsupported(t *testing.T) {
	s := canonicalSeries(t, "messages")
	defer s.Release()

	_, err := s.Eq([]int{1, 2, 3})
	require.Error(t, err)
}
