package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("my-secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "my-secret-password", hashed)

	assert.True(t, Verify("my-secret-password", hashed))
	assert.False(t, Verify("wrong-password", hashed))
}

func TestHashProducesDifferentSalts(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestHashToken(t *testing.T) {
	hash := HashToken("some-refresh-token")

	// SHA-256 hex digest
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, HashToken("another-token"))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("12345678"))
	assert.True(t, Validate("a-much-longer-password"))
	assert.False(t, Validate("1234567"))
	assert.False(t, Validate(""))
}
