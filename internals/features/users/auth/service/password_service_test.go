package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "planner_backend/internals/helpers"
)

func TestHashPassword_KnownDigest(t *testing.T) {
	got := HashPassword("abcdefghijklmnop", "hunter2")
	assert.Equal(t,
		"d8298309b4a746302339e0b7ac07105acd065cbdd9eadf1ec5712735a8c6280d5bf1a27bfa7a4c76a5514f0b92843d7bbc9e98cb510aeb7e490fc1ed8ad98216",
		got)
	assert.Len(t, got, 128)
}

func TestHashPassword_EmptyInputs(t *testing.T) {
	assert.Equal(t,
		"c02ee30d68db14d8da1151449c72c2a2902ede11b65ad8724b9b5774715eb8d6ae3b77b6fff3a340588545d782824dd3db8626b4117aa4403a7bf6bd2dcf15b1",
		HashPassword("", ""))
}

func TestHashPassword_Sensitivity(t *testing.T) {
	base := HashPassword("saltsaltsaltsalt", "password")
	assert.Equal(t, base, HashPassword("saltsaltsaltsalt", "password"))
	assert.NotEqual(t, base, HashPassword("saltsaltsaltsalT", "password"))
	assert.NotEqual(t, base, HashPassword("saltsaltsaltsalt", "Password"))
}

func TestCheckPassword(t *testing.T) {
	digest := HashPassword("0123456789abcdef", "s3cret")
	assert.True(t, CheckPassword(digest, "0123456789abcdef", "s3cret"))
	assert.False(t, CheckPassword(digest, "0123456789abcdef", "s3cret "))
	assert.False(t, CheckPassword(digest, "0123456789abcdeg", "s3cret"))
	assert.False(t, CheckPassword("", "0123456789abcdef", "s3cret"))
}

func TestNewSaltAndToken(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltLength)

	token, err := NewSessionToken()
	require.NoError(t, err)
	assert.Len(t, token, TokenLength)

	for _, r := range salt + token {
		assert.True(t, strings.ContainsRune(helper.Alphanumeric, r), "unexpected rune %q", r)
	}

	other, err := NewSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
