package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "ea9083a270357e95a1bdb53188a66bb4"

func TestHMACHasher_KnownVector(t *testing.T) {
	h, err := NewHMACHasher(testKey)
	require.NoError(t, err)

	assert.Equal(t,
		"AruH7PQCX59V/lpUe23i7NZOgfcnncKw09FARBzBXUlqocJa8H7O3iRNX6wqhcvG/BuUnwf2RTTR6DqCRMo/VA==",
		h.Hash("x"))
}

func TestHMACHasher_Deterministic(t *testing.T) {
	h, err := NewHMACHasher(testKey)
	require.NoError(t, err)

	assert.Equal(t, h.Hash("s3cret"), h.Hash("s3cret"))
	assert.NotEqual(t, h.Hash("s3cret"), h.Hash("s3cret "))
	assert.Len(t, h.Hash(""), 88)
}

func TestHMACHasher_KeyMatters(t *testing.T) {
	a, err := NewHMACHasher("key-a")
	require.NoError(t, err)
	b, err := NewHMACHasher("key-b")
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash("same"), b.Hash("same"))
}

func TestNewHMACHasher_EmptyKey(t *testing.T) {
	_, err := NewHMACHasher("")
	assert.Error(t, err)
}
