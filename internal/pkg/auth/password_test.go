package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordWithCost("campus-admin-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "campus-admin-pass", hash)

	assert.True(t, CheckPassword(hash, "campus-admin-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
	assert.False(t, CheckPassword("not-a-hash", "campus-admin-pass"))
}
