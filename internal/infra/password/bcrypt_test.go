package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := Hasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("staff123")
	require.NoError(t, err)
	assert.NotEqual(t, "staff123", hash)

	assert.NoError(t, h.Verify(hash, "staff123"))
	assert.ErrorIs(t, h.Verify(hash, "staff124"), ErrMismatch)
}

func TestHasher_MalformedHash(t *testing.T) {
	err := Hasher{Cost: bcrypt.MinCost}.Verify("not-a-hash", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
