package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("marvin123")
	require.NoError(t, err)

	assert.NotEqual(t, "marvin123", hash)
	assert.True(t, CheckPassword("marvin123", hash))
	assert.False(t, CheckPassword("lebron123", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)

	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// Same plaintext, different salts.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}
