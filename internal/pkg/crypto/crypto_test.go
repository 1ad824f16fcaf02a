package crypto

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-vault/internal/pkg/config"
)

const hexRootKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestLocalRootKeyCipher_RoundTrip(t *testing.T) {
	c, err := NewLocalRootKeyCipher(hexRootKey)
	require.NoError(t, err)
	ctx := context.Background()

	plaintext := []byte(`{"url":"https://bank.example","username":"alice","password":"s3cret"}`)

	ct1, err := c.EncryptWithRootKey(ctx, plaintext)
	require.NoError(t, err)
	ct2, err := c.EncryptWithRootKey(ctx, plaintext)
	require.NoError(t, err)

	assert.False(t, bytes.Contains(ct1, plaintext))
	assert.NotEqual(t, ct1, ct2, "nonce must differ per encryption")

	got, err := c.DecryptWithRootKey(ctx, ct1)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	empty, err := c.EncryptWithRootKey(ctx, nil)
	require.NoError(t, err)
	got, err = c.DecryptWithRootKey(ctx, empty)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalRootKeyCipher_Tampered(t *testing.T) {
	c, err := NewLocalRootKeyCipher(hexRootKey)
	require.NoError(t, err)
	ctx := context.Background()

	ct, err := c.EncryptWithRootKey(ctx, []byte("hello"))
	require.NoError(t, err)

	ct[len(ct)-1] ^= 0xff
	_, err = c.DecryptWithRootKey(ctx, ct)
	assert.Error(t, err)

	_, err = c.DecryptWithRootKey(ctx, []byte("short"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestLocalRootKeyCipher_DifferentKeys(t *testing.T) {
	ctx := context.Background()
	a, err := NewLocalRootKeyCipher(hexRootKey)
	require.NoError(t, err)
	b, err := NewLocalRootKeyCipher("a-completely-different-passphrase")
	require.NoError(t, err)

	ct, err := a.EncryptWithRootKey(ctx, []byte("hello"))
	require.NoError(t, err)

	_, err = b.DecryptWithRootKey(ctx, ct)
	assert.Error(t, err)
}

func TestNewLocalRootKeyCipher_RejectsShortKey(t *testing.T) {
	_, err := NewLocalRootKeyCipher("short")
	assert.Error(t, err)

	_, err = NewLocalRootKeyCipher("00010203")
	assert.Error(t, err)
}

func TestNewRootKeyCipher(t *testing.T) {
	c, err := NewRootKeyCipher(&config.CryptoConfig{Provider: config.CryptoProviderLocal, RootKey: hexRootKey})
	require.NoError(t, err)
	assert.IsType(t, &LocalRootKeyCipher{}, c)

	c, err = NewRootKeyCipher(&config.CryptoConfig{
		Provider: config.CryptoProviderVault,
		Vault:    config.VaultTransitConfig{Address: "http://127.0.0.1:8200", KeyName: "k"},
	})
	require.NoError(t, err)
	assert.IsType(t, &TransitRootKeyCipher{}, c)

	_, err = NewRootKeyCipher(&config.CryptoConfig{Provider: "aws-kms"})
	assert.Error(t, err)

	c, err = NewRootKeyCipher(&config.CryptoConfig{Provider: config.CryptoProviderLocal})
	assert.Error(t, err)
	assert.Nil(t, c)
}
