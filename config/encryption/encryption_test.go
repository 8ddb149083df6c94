package encryption

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := New(testKey)
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadKeys(t *testing.T) {
	_, err := New("not-hex")
	assert.Error(t, err)

	_, err = New("0011")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestRoundTrip(t *testing.T) {
	c := newCipher(t)
	for _, plain := range []string{"LIC123", "MD-0000-991", "", "ライセンス"} {
		enc, err := c.Encrypt(plain)
		require.NoError(t, err)
		if plain != "" {
			assert.NotEqual(t, plain, enc)
		}

		dec, err := c.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, plain, dec)
	}
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	c := newCipher(t)
	a, err := c.Encrypt("LIC123")
	require.NoError(t, err)
	b, err := c.Encrypt("LIC123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptRejectsTampering(t *testing.T) {
	c := newCipher(t)
	enc, err := c.Encrypt("LIC123")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(enc)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	_, err = c.Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)

	_, err = c.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestIndexIsDeterministicAndKeyed(t *testing.T) {
	c := newCipher(t)
	assert.Equal(t, c.Index("LIC123"), c.Index("LIC123"))
	assert.NotEqual(t, c.Index("LIC123"), c.Index("LIC124"))
	assert.NotContains(t, c.Index("LIC123"), "LIC123")

	other, err := New("ff0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	assert.NotEqual(t, c.Index("LIC123"), other.Index("LIC123"))
}
