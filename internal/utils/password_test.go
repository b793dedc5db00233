package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash uses the PHC format")
	assert.True(t, VerifyPassword("s3cret-passw0rd", hash))
	assert.False(t, VerifyPassword("wrong-passw0rd", hash))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	second, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	// Fresh salt every time means identical passwords never share a hash
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("s3cret-passw0rd", first))
	assert.True(t, VerifyPassword("s3cret-passw0rd", second))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
	} {
		assert.False(t, VerifyPassword("s3cret-passw0rd", encoded), "encoded=%q", encoded)
	}
}
