package secrets_test

import (
	"encoding/base64"
	"testing"

	"grocery/internal/pkg/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef") // 32 bytes

func TestNewAESEncryptor(t *testing.T) {
	t.Run("should accept 16, 24 and 32 byte keys", func(t *testing.T) {
		for _, size := range []int{16, 24, 32} {
			_, err := secrets.NewAESEncryptor(testKey[:size])
			require.NoError(t, err, "expected %d byte key to be accepted", size)
		}
	})

	t.Run("should reject keys of other sizes", func(t *testing.T) {
		for _, size := range []int{0, 1, 15, 17, 31} {
			_, err := secrets.NewAESEncryptor(testKey[:size])
			require.Error(t, err, "expected %d byte key to be rejected", size)
		}
	})
}

func TestAESEncryptor_RoundTrip(t *testing.T) {
	encryptor, err := secrets.NewAESEncryptor(testKey)
	require.NoError(t, err)

	for _, plaintext := range []string{"4242424242424242", "", "short"} {
		ciphertext, err := encryptor.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted, err := encryptor.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestAESEncryptor_UniqueCiphertexts(t *testing.T) {
	encryptor, err := secrets.NewAESEncryptor(testKey)
	require.NoError(t, err)

	first, err := encryptor.Encrypt("4242424242424242")
	require.NoError(t, err)
	second, err := encryptor.Encrypt("4242424242424242")
	require.NoError(t, err)

	// Per-call nonces make equal plaintexts encrypt differently.
	assert.NotEqual(t, first, second)
}

func TestAESEncryptor_Decrypt_Malformed(t *testing.T) {
	encryptor, err := secrets.NewAESEncryptor(testKey)
	require.NoError(t, err)

	t.Run("should reject invalid base64", func(t *testing.T) {
		_, err := encryptor.Decrypt("not base64!!!")

		require.Error(t, err)
		assert.ErrorIs(t, err, secrets.ErrCiphertextIsMalformed)
	})

	t.Run("should reject data shorter than the nonce", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte("tiny"))

		_, err := encryptor.Decrypt(short)

		require.Error(t, err)
		assert.ErrorIs(t, err, secrets.ErrCiphertextIsMalformed)
	})

	t.Run("should reject tampered ciphertext", func(t *testing.T) {
		ciphertext, err := encryptor.Encrypt("4242424242424242")
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(ciphertext)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xff
		tampered := base64.StdEncoding.EncodeToString(raw)

		_, err = encryptor.Decrypt(tampered)
		require.Error(t, err)
	})

	t.Run("should reject ciphertext from another key", func(t *testing.T) {
		other, err := secrets.NewAESEncryptor(testKey[:16])
		require.NoError(t, err)

		ciphertext, err := other.Encrypt("4242424242424242")
		require.NoError(t, err)

		_, err = encryptor.Decrypt(ciphertext)
		require.Error(t, err)
	})
}
