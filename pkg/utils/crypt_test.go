package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptAndVerifyPassword(t *testing.T) {
	digest, err := Crypt("super-secret")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, VerifyPassword("super-secret", digest))
	assert.False(t, VerifyPassword("wrong-password", digest))
}

func TestCryptSaltRandomization(t *testing.T) {
	first, err := Crypt("same-input")
	require.NoError(t, err)
	second, err := Crypt("same-input")
	require.NoError(t, err)

	// bcrypt每次生成随机salt 相同输入的摘要不应相同
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-input", first))
	assert.True(t, VerifyPassword("same-input", second))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("anything", ""))
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-digest"))
}
