package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier_HashAndCompare(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()
	password := "correct horse battery staple"

	hash, err := verifier.Hash(password)
	require.NoError(t, err)

	assert.NotEqual(t, password, hash, "hash must not equal the plaintext")
	assert.True(t, strings.HasPrefix(hash, "$2"), "output should be a bcrypt digest")

	assert.NoError(t, verifier.Compare(hash, password))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
}

func TestBcryptVerifier_HashesAreSalted(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()

	first, err := verifier.Hash("same-password")
	require.NoError(t, err)
	second, err := verifier.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash embeds a fresh random salt")
	assert.NoError(t, verifier.Compare(first, "same-password"))
	assert.NoError(t, verifier.Compare(second, "same-password"))
}

func TestBcryptVerifier_PasswordTooLong(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()

	// bcrypt refuses input longer than 72 bytes.
	_, err := verifier.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestBcryptVerifier_CompareWithGarbageHash(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "anything"))
}
