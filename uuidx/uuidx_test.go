package uuidx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewV4_Version(t *testing.T) {
	id := NewV4()
	require.Equal(t, uuid.Version(4), id.Version())
	require.Equal(t, uuid.RFC4122, id.Variant())
}

func TestNewV4_PairwiseDistinct(t *testing.T) {
	const n = 10000

	seen := make(map[uuid.UUID]struct{}, n)
	for range n {
		id := NewV4()
		_, dup := seen[id]
		require.False(t, dup, "duplicate UUID generated: %s", id)
		require.Equal(t, uuid.Version(4), id.Version())
		seen[id] = struct{}{}
	}
	require.Len(t, seen, n)
}

func TestNewV4String_Canonical(t *testing.T) {
	s := NewV4String()

	parsed, err := uuid.Parse(s)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())
	require.Len(t, s, 36)
}
