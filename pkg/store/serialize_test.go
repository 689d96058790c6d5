package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heysubinoy/confstore/pkg/kv"
)

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	src := New("svc")
	require.NoError(t, src.Set("host", "localhost"))
	require.NoError(t, src.Set("port", "8080"))

	dst := New("other")
	require.NoError(t, dst.Deserialize(src.Serialize()))

	require.Equal(t, "svc", dst.Name())
	v, ok := dst.Get("host")
	require.True(t, ok)
	require.Equal(t, "localhost", v)
	v, ok = dst.Get("port")
	require.True(t, ok)
	require.Equal(t, "8080", v)
	require.Equal(t, 2, dst.Len())
}

func TestSerializeDeserialize_EmptyStore(t *testing.T) {
	dst := New("other")
	require.NoError(t, dst.Deserialize(New("fresh").Serialize()))

	require.Equal(t, "fresh", dst.Name())
	require.Equal(t, 0, dst.Len())
}

func TestDeserialize_ErrorOnMalformed(t *testing.T) {
	s := New("svc")
	require.NoError(t, s.Set("k", "v"))

	for _, data := range []string{
		"{ unclosed flow mapping",
		"just a scalar, not a document",
	} {
		err := s.Deserialize(data)
		require.ErrorIs(t, err, kv.ErrMalformed)
	}

	// The store is untouched on failure.
	require.Equal(t, "svc", s.Name())
	v, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestDeserialize_ReplacesExistingContents(t *testing.T) {
	dst := New("old")
	require.NoError(t, dst.Set("stale", "1"))

	src := New("new")
	require.NoError(t, src.Set("fresh", "2"))

	require.NoError(t, dst.Deserialize(src.Serialize()))
	require.Equal(t, "new", dst.Name())
	_, ok := dst.Get("stale")
	require.False(t, ok)
	v, ok := dst.Get("fresh")
	require.True(t, ok)
	require.Equal(t, "2", v)
}
