package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	ok, err := Compare("secret1", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Compare("wrong", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_ProducesDistinctSalts(t *testing.T) {
	h1, err := Hash("secret1")
	assert.NoError(t, err)
	h2, err := Hash("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompare_MalformedHash(t *testing.T) {
	ok, err := Compare("secret1", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrHash)
}
