package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("longenough1")
	require.NoError(t, err)
	require.NotEqual(t, "longenough1", hash)

	assert.True(t, CheckPassword(hash, "longenough1"))
	assert.False(t, CheckPassword(hash, "wrongpassword"))
	assert.False(t, CheckPassword("not-a-hash", "longenough1"))
}
