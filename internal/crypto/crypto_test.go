package crypto

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	const n = 64
	a, err := RandBytes(n)
	require.NoError(t, err)
	require.Len(t, a, n)

	b, err := RandBytes(n)
	require.NoError(t, err)
	require.False(t, bytes.Equal(a, b), "two subsequent RandBytes(%d) are equal", n)
	require.False(t, bytes.Equal(a, make([]byte, n)), "RandBytes returned all zeros")
}

func TestToken_HexOfRequestedBytes(t *testing.T) {
	t.Parallel()

	tok, err := Token(32)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), tok)

	other, err := Token(32)
	require.NoError(t, err)
	require.NotEqual(t, tok, other)
}

func TestOTP(t *testing.T) {
	t.Parallel()

	for range 50 {
		code, err := OTP(6)
		require.NoError(t, err)
		require.Regexp(t, `^[0-9]{6}$`, code)
	}
	_, err := OTP(0)
	require.Error(t, err)
	_, err = OTP(19)
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	require.True(t, Equal("123456", "123456"))
	require.False(t, Equal("123456", "123457"))
	require.False(t, Equal("123456", "12345"))
}

func TestHashPassword_DeterministicOnSameInput(t *testing.T) {
	t.Parallel()

	pw := []byte("p@ssw0rd")
	salt := []byte("NaCl-16-bytes?")

	h1 := HashPassword(pw, salt)
	h2 := HashPassword(pw, salt)
	require.NotEmpty(t, h1)
	require.Equal(t, h1, h2)

	require.NotEqual(t, h1, HashPassword(pw, []byte("another-salt----")))
	require.NotEqual(t, h1, HashPassword([]byte("p@ssw0rd!"), salt))
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	pw := []byte("correct horse battery staple")
	salt := []byte("salty-salt-123456")
	hash := HashPassword(pw, salt)

	require.True(t, VerifyPassword(pw, salt, hash))
	require.False(t, VerifyPassword([]byte("wrong"), salt, hash))
	require.False(t, VerifyPassword(pw, []byte("wrong-salt"), hash))
	require.False(t, VerifyPassword([]byte{}, salt, hash))
}
